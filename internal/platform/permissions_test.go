package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()

	file := filepath.Join(tmp, "state.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(tmp, "secure")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		mode os.FileMode
	}{
		{"file", file, 0600},
		{"directory", dir, 0700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Chmod(tt.path, tt.mode); err != nil {
				t.Fatalf("Chmod failed: %v", err)
			}
			if runtime.GOOS == "windows" {
				return
			}
			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != tt.mode {
				t.Errorf("permissions = %o, want %o", perm, tt.mode)
			}
		})
	}
}
