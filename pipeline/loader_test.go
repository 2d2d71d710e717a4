package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petal-labs/reel/core"
)

func TestLoadReferenceImages(t *testing.T) {
	dir := t.TempDir()
	archer := filepath.Join(dir, "archer.png")
	knight := filepath.Join(dir, "knight.png")
	if err := os.WriteFile(archer, []byte("archer-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(knight, []byte("knight-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	refs := LoadReferenceImages(zerolog.Nop(), []string{archer, knight})

	if len(refs) != 2 {
		t.Fatalf("len = %d, want 2", len(refs))
	}
	if string(refs[0].Data) != "archer-bytes" || string(refs[1].Data) != "knight-bytes" {
		t.Error("want image bytes in input order")
	}
	for _, ref := range refs {
		if ref.MIMEType != "image/png" {
			t.Errorf("MIMEType = %q, want image/png", ref.MIMEType)
		}
		if ref.Role != core.ReferenceRoleAsset {
			t.Errorf("Role = %q, want asset", ref.Role)
		}
	}
}

func TestLoadReferenceImagesSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "knight.png")
	if err := os.WriteFile(good, []byte("knight-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A directory passes the existence check but fails to read as a file.
	bad := filepath.Join(dir, "not-a-file")
	if err := os.Mkdir(bad, 0o755); err != nil {
		t.Fatal(err)
	}

	refs := LoadReferenceImages(zerolog.Nop(), []string{bad, good})

	if len(refs) != 1 {
		t.Fatalf("len = %d, want 1 (unreadable entry skipped)", len(refs))
	}
	if string(refs[0].Data) != "knight-bytes" {
		t.Error("surviving image is not the readable one")
	}
}

func TestMimeTypeForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"avatars/archer.png", "image/png"},
		{"avatars/photo.JPG", "image/jpeg"},
		{"avatars/photo.jpeg", "image/jpeg"},
		{"avatars/sticker.webp", "image/webp"},
		{"avatars/unknown.bin", "image/png"},
	}

	for _, tt := range tests {
		if got := mimeTypeForPath(tt.path); got != tt.want {
			t.Errorf("mimeTypeForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
