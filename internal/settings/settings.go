// Package settings manages named CLI settings stored in a config.json
// document, either per-user (~/.stash/config.json) or project-local
// (<project>/.stash/config.json). Environment variables carrying the STASH_
// prefix override file values at read time.
package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/stash-labs/stash/internal/branding"
	"github.com/stash-labs/stash/internal/configfile"
)

// Filename is the settings document name beneath the state folder.
const Filename = "config.json"

// Settings wraps a settings document together with its environment overlay.
type Settings struct {
	file *configfile.ConfigFile
	env  *viper.Viper
}

// Load opens the settings document and reads its current contents. global
// selects the per-user file under the home directory; otherwise the
// project-local state file is used. A missing file loads as empty.
func Load(global bool) (*Settings, error) {
	file, err := configfile.New(configfile.Options{
		Filename: Filename,
		IsGlobal: global,
		IsState:  !global,
	})
	if err != nil {
		return nil, err
	}
	if _, err := file.Read(); err != nil {
		return nil, err
	}

	env := viper.New()
	env.SetEnvPrefix(branding.EnvPrefix())
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	env.AutomaticEnv()

	return &Settings{file: file, env: env}, nil
}

// Get returns the value for key. An environment override (STASH_<KEY>) wins
// over the file value. Missing keys return the empty string.
func (s *Settings) Get(key string) string {
	if v := s.env.GetString(key); v != "" {
		return v
	}
	if v, ok := s.file.Contents()[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Set assigns key in memory. Call Save to persist.
func (s *Settings) Set(key, value string) {
	s.file.Contents()[key] = value
}

// Unset removes key from the document and reports whether it was present.
func (s *Settings) Unset(key string) bool {
	if _, ok := s.file.Contents()[key]; !ok {
		return false
	}
	delete(s.file.Contents(), key)
	return true
}

// Keys returns the stored keys in sorted order. Environment-only overrides
// are not listed.
func (s *Settings) Keys() []string {
	contents := s.file.Contents()
	keys := make([]string, 0, len(contents))
	for k := range contents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the document back to disk.
func (s *Settings) Save() error {
	_, err := s.file.Write(nil)
	return err
}

// Path returns the backing file path.
func (s *Settings) Path() string {
	return s.file.Path()
}
