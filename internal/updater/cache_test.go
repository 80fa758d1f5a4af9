package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCache_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cache, err := LoadCache()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache for missing file")
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	now := time.Now().Truncate(time.Second)
	original := &VersionCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.1.0",
		CheckedAt:       now,
		UpdateAvailable: true,
	}

	if err := SaveCache(original); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache()
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want %q", loaded.LatestVersion, "1.2.0")
	}
	if loaded.CurrentVersion != "1.1.0" {
		t.Errorf("CurrentVersion = %q, want %q", loaded.CurrentVersion, "1.1.0")
	}
	if !loaded.UpdateAvailable {
		t.Error("UpdateAvailable should be true")
	}
	if !loaded.CheckedAt.Equal(now) {
		t.Errorf("CheckedAt = %v, want %v", loaded.CheckedAt, now)
	}
}

func TestSaveCache_WritesUnderStateFolder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := SaveCache(&VersionCache{CheckedAt: time.Now()}); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".stash", cacheFilename)); err != nil {
		t.Errorf("expected cache file under ~/.stash: %v", err)
	}
}

func TestLoadCache_Corrupted(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".stash")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, cacheFilename), []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCache(); err == nil {
		t.Error("expected error for corrupted cache")
	}
}

func TestIsCacheStale(t *testing.T) {
	tests := []struct {
		name     string
		cache    *VersionCache
		maxAge   time.Duration
		expected bool
	}{
		{"nil cache is stale", nil, 24 * time.Hour, true},
		{"fresh cache", &VersionCache{CheckedAt: time.Now()}, 24 * time.Hour, false},
		{"expired cache", &VersionCache{CheckedAt: time.Now().Add(-48 * time.Hour)}, 24 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCacheStale(tt.cache, tt.maxAge); got != tt.expected {
				t.Errorf("IsCacheStale = %v, want %v", got, tt.expected)
			}
		})
	}
}
