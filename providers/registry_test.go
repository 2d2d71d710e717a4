package providers

import (
	"testing"

	"github.com/petal-labs/reel/core"
)

type stubProvider struct {
	id string
}

func (s *stubProvider) ID() string                 { return s.id }
func (s *stubProvider) Models() []core.ModelInfo   { return nil }
func (s *stubProvider) Supports(core.Feature) bool { return false }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func(apiKey string) core.Provider {
		return &stubProvider{id: "stub"}
	})

	if !IsRegistered("stub") {
		t.Fatal("IsRegistered(stub) = false, want true")
	}

	p, err := Create("stub", "key")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID() != "stub" {
		t.Errorf("ID() = %q, want stub", p.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", "key"); err == nil {
		t.Error("Create(unknown) error = nil, want error")
	}
}

func TestListSorted(t *testing.T) {
	Register("zzz", func(string) core.Provider { return &stubProvider{id: "zzz"} })
	Register("aaa", func(string) core.Provider { return &stubProvider{id: "aaa"} })

	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("List() = %v, want sorted order", names)
		}
	}
}
