package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "go.mod")
	if err := WriteFile(path, []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Fatalf("content = %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "aoch.yaml")
	if err := WriteFile(path, []byte("x"), 0644); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	created, err := CreateFile(path, []byte("first"), 0644)
	if err != nil || !created {
		t.Fatalf("created=%v err=%v", created, err)
	}
	created, err = CreateFile(path, []byte("second"), 0644)
	if err != nil || created {
		t.Fatalf("second create: created=%v err=%v", created, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "first" {
		t.Fatalf("existing file overwritten: %q", data)
	}
}

func TestSizeAndExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if Exists(path) || Size(path) != -1 {
		t.Fatal("missing file reported as present")
	}
	os.WriteFile(path, []byte("12345"), 0644)
	if !Exists(path) || Size(path) != 5 {
		t.Fatalf("Size = %d", Size(path))
	}
	if Size(dir) != -1 {
		t.Fatal("directory should have no size")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("AOCH_TEST_DIR", "/secrets")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in, base, want string
	}{
		{"session.txt", "/proj", "/proj/session.txt"},
		{"$AOCH_TEST_DIR/aoc", "/proj", "/secrets/aoc"},
		{"~/aoc/session", "/proj", filepath.Join(home, "aoc/session")},
		{"/abs/path", "/proj", "/abs/path"},
		{"rel", "", "rel"},
		{"", "/proj", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in, tt.base); got != tt.want {
			t.Errorf("ExpandPath(%q, %q) = %q, want %q", tt.in, tt.base, got, tt.want)
		}
	}
}
