// Package project locates the root directory of a stash project by walking
// upward from the working directory until it finds the stash.json marker.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stash-labs/stash/internal/branding"
)

// MarkerFile is the file whose presence marks a project root.
const MarkerFile = "stash.json"

// ErrNoProject is returned when no marker file is found between the starting
// directory and the filesystem root.
var ErrNoProject = errors.New("not inside a project (no " + MarkerFile + " found)")

// Resolve returns the project root for the current working directory.
// It checks the STASH_PROJECT_ROOT environment variable first, then walks
// upward from the working directory.
func Resolve() (string, error) {
	if v := os.Getenv(branding.EnvVar("PROJECT_ROOT")); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return ResolveFrom(cwd)
}

// ResolveFrom walks upward from dir looking for the marker file and returns
// the first directory that contains it.
func ResolveFrom(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for {
		info, err := os.Stat(filepath.Join(dir, MarkerFile))
		if err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// Marker represents the contents of a stash.json project marker.
type Marker struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ReadMarker parses the marker file at the given project root.
func ReadMarker(root string) (*Marker, error) {
	data, err := os.ReadFile(filepath.Join(root, MarkerFile))
	if err != nil {
		return nil, fmt.Errorf("reading project marker: %w", err)
	}
	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", MarkerFile, err)
	}
	return &m, nil
}

// WriteMarker writes a marker file into dir, creating the directory if
// needed. It refuses to overwrite an existing marker.
func WriteMarker(dir string, m *Marker) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, MarkerFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling project marker: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
