package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSecretRedaction(t *testing.T) {
	secret := NewSecret("AIza-super-secret")

	if got := fmt.Sprintf("%v", secret); got != "[REDACTED]" {
		t.Errorf("%%v = %q, want [REDACTED]", got)
	}
	if got := fmt.Sprintf("%s", secret); got != "[REDACTED]" {
		t.Errorf("%%s = %q, want [REDACTED]", got)
	}
	if got := fmt.Sprintf("%#v", secret); !strings.Contains(got, "REDACTED") {
		t.Errorf("%%#v = %q, want redacted", got)
	}
}

func TestSecretJSONRedaction(t *testing.T) {
	type payload struct {
		Key Secret `json:"key"`
	}

	data, err := json.Marshal(payload{Key: NewSecret("AIza-super-secret")})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "super-secret") {
		t.Errorf("Marshal() = %s, leaked secret value", data)
	}
}

func TestSecretExpose(t *testing.T) {
	secret := NewSecret("AIza-super-secret")
	if secret.Expose() != "AIza-super-secret" {
		t.Errorf("Expose() = %q, want original value", secret.Expose())
	}
}

func TestSecretIsEmpty(t *testing.T) {
	if !NewSecret("").IsEmpty() {
		t.Error("IsEmpty() = false for empty secret, want true")
	}
	if NewSecret("x").IsEmpty() {
		t.Error("IsEmpty() = true for non-empty secret, want false")
	}
}
