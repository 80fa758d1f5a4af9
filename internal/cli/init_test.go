package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDir_Creates(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "state")

	var out bytes.Buffer
	if err := ensureDir(&out, dir, 0755); err != nil {
		t.Fatalf("ensureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
	if !strings.Contains(out.String(), "[ OK ]") {
		t.Errorf("expected OK line, got %q", out.String())
	}
}

func TestEnsureDir_SkipsExisting(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	if err := ensureDir(&out, dir, 0755); err != nil {
		t.Fatalf("ensureDir: %v", err)
	}
	if !strings.Contains(out.String(), "[SKIP]") {
		t.Errorf("expected SKIP line, got %q", out.String())
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := ensureDir(&out, path, 0755); err == nil {
		t.Error("expected error when a file blocks the directory")
	}
}
