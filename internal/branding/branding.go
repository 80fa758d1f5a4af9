// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this directory and rebuild. Go's
// //go:embed bakes the values into the binary; hard defaults cover a
// missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	StateDir    string `yaml:"state_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "stash",
			DisplayName: "Stash",
			Description: "JSON configuration and state manager for development tools",
			StateDir:    ".stash",
			EnvPrefix:   "STASH",
			GoModule:    "github.com/stash-labs/stash",
			GitHubRepo:  "stash-labs/stash",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "stash").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Stash").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// StateDir returns the hidden state-folder name appended beneath a
// resolved root for global and state files (e.g., ".stash").
func StateDir() string { load(); return defaults.StateDir }

// EnvPrefix returns the environment variable prefix (e.g., "STASH").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by rebrand tooling, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("PROJECT_ROOT") → "STASH_PROJECT_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
