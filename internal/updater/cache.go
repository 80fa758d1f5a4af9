package updater

import (
	"fmt"
	"time"

	"github.com/stash-labs/stash/internal/configfile"
)

const (
	cacheFilename = "version-check.json"
	// DefaultCacheMaxAge is the default maximum age for the version cache.
	DefaultCacheMaxAge = 24 * time.Hour
)

// VersionCache holds cached version check results.
type VersionCache struct {
	LatestVersion   string
	CurrentVersion  string
	CheckedAt       time.Time
	UpdateAvailable bool
}

// cacheFile opens the global state file backing the version cache
// (~/.stash/version-check.json).
func cacheFile() (*configfile.ConfigFile, error) {
	return configfile.New(configfile.Options{Filename: cacheFilename, IsGlobal: true})
}

// LoadCache reads the version cache from the global state folder.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache() (*VersionCache, error) {
	f, err := cacheFile()
	if err != nil {
		return nil, err
	}
	if !f.Exists() {
		return nil, nil
	}

	contents, err := f.ReadJSON()
	if err != nil {
		return nil, fmt.Errorf("loading version cache: %w", err)
	}

	cache := &VersionCache{
		LatestVersion:   asString(contents["latest_version"]),
		CurrentVersion:  asString(contents["current_version"]),
		UpdateAvailable: contents["update_available"] == true,
	}
	if ts := asString(contents["checked_at"]); ts != "" {
		checked, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing version cache timestamp: %w", err)
		}
		cache.CheckedAt = checked
	}
	return cache, nil
}

// SaveCache writes the version cache to the global state folder.
func SaveCache(cache *VersionCache) error {
	f, err := cacheFile()
	if err != nil {
		return err
	}
	_, err = f.Write(map[string]any{
		"latest_version":   cache.LatestVersion,
		"current_version":  cache.CurrentVersion,
		"checked_at":       cache.CheckedAt.Format(time.RFC3339),
		"update_available": cache.UpdateAvailable,
	})
	if err != nil {
		return fmt.Errorf("saving version cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is older than maxAge or nil.
func IsCacheStale(cache *VersionCache, maxAge time.Duration) bool {
	if cache == nil {
		return true
	}
	return time.Since(cache.CheckedAt) > maxAge
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
