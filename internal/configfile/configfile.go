package configfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stash-labs/stash/internal/branding"
)

// Permission constants for created directories and files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// jsonIndent is the indentation used for serialized documents.
const jsonIndent = "    "

// Options are the immutable creation parameters for a ConfigFile.
type Options struct {
	// RootFolder overrides root resolution entirely when set.
	RootFolder string

	// Filename is the name of the managed file. Required.
	Filename string

	// IsGlobal resolves the file against the user's home directory and
	// nests it under the state folder.
	IsGlobal bool

	// IsState nests the file under the state folder beneath the resolved
	// root, for files that hold tool state rather than user configuration.
	IsState bool

	// FilePath is an optional subdirectory between the root and the filename.
	FilePath string

	// StateFolder overrides the default hidden state-folder name
	// (branding.StateDir). Mainly useful in tests.
	StateFolder string
}

// ConfigFile manages a single JSON document at a path resolved once at
// construction. The in-memory contents stay nil until a read populates them
// or a write or SetContents assigns them.
//
// Two ConfigFiles pointed at the same path are not coordinated: Write is
// last-writer-wins and a Read concurrent with a Write has no ordering
// guarantee.
type ConfigFile struct {
	opts     Options
	path     string
	contents map[string]any
}

// New resolves opts into a fully initialized ConfigFile. The filename is
// validated and the final path computed before any file I/O; the path is
// never recomputed afterwards.
func New(opts Options) (*ConfigFile, error) {
	if opts.Filename == "" {
		return nil, ErrMissingFilename
	}

	root := opts.RootFolder
	if root == "" {
		var err error
		root, err = ResolveRootFolder(opts.IsGlobal)
		if err != nil {
			return nil, err
		}
	}

	if opts.IsGlobal || opts.IsState {
		state := opts.StateFolder
		if state == "" {
			state = branding.StateDir()
		}
		root = filepath.Join(root, state)
	}

	return &ConfigFile{
		opts: opts,
		path: filepath.Join(root, opts.FilePath, opts.Filename),
	}, nil
}

// Access reports whether the file can be opened with the given flag
// (os.O_RDONLY, os.O_WRONLY, ...). Every failure, including a missing file,
// reports false. Callers that need to tell causes apart should use Stat or
// Read instead.
func (c *ConfigFile) Access(flag int) bool {
	return c.access(flag) == nil
}

// access keeps the underlying cause as an error; Access flattens it to a
// boolean at the convenience boundary.
func (c *ConfigFile) access(flag int) error {
	f, err := os.OpenFile(c.path, flag, 0)
	if err != nil {
		return err
	}
	return f.Close()
}

// Read loads and parses the file as JSON and stores the result as the
// in-memory contents. A missing file is not an error: the contents become an
// empty map. Parse errors and all other I/O errors propagate.
func (c *ConfigFile) Read() (map[string]any, error) {
	return c.read(false)
}

// ReadJSON is like Read but fails when the file does not exist.
func (c *ConfigFile) ReadJSON() (map[string]any, error) {
	return c.read(true)
}

func (c *ConfigFile) read(failOnMissing bool) (map[string]any, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !failOnMissing {
			c.contents = map[string]any{}
			return c.contents, nil
		}
		return nil, fmt.Errorf("reading %s: %w", c.path, err)
	}

	var contents map[string]any
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", c.path, err)
	}
	if contents == nil {
		contents = map[string]any{}
	}
	c.contents = contents
	return c.contents, nil
}

// Write replaces the in-memory contents when newContents is non-nil, creates
// the parent directory chain, and overwrites the file with the contents
// serialized as 4-space-indented JSON. It returns the contents written.
// Writers racing on the same path are not coordinated; the last write wins.
func (c *ConfigFile) Write(newContents map[string]any) (map[string]any, error) {
	if newContents != nil {
		c.contents = newContents
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c.Contents(), "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, FilePerm); err != nil {
		return nil, fmt.Errorf("writing %s: %w", c.path, err)
	}
	return c.contents, nil
}

// Exists reports whether the file exists and is readable.
func (c *ConfigFile) Exists() bool {
	return c.Access(os.O_RDONLY)
}

// Stat returns filesystem metadata for the resolved path. Underlying errors
// propagate.
func (c *ConfigFile) Stat() (os.FileInfo, error) {
	return os.Stat(c.path)
}

// Unlink removes the file. It fails with ErrTargetNotFound, naming the path,
// when the file does not exist. Single attempt, no retry.
func (c *ConfigFile) Unlink() error {
	if !c.Exists() {
		return fmt.Errorf("%w: %s", ErrTargetNotFound, c.path)
	}
	if err := os.Remove(c.path); err != nil {
		return fmt.Errorf("removing %s: %w", c.path, err)
	}
	return nil
}

// Path returns the resolved file path.
func (c *ConfigFile) Path() string {
	return c.path
}

// Contents returns the in-memory contents, substituting an empty map when
// nothing has been read or set yet.
func (c *ConfigFile) Contents() map[string]any {
	if c.contents == nil {
		c.contents = map[string]any{}
	}
	return c.contents
}

// SetContents replaces the in-memory contents without touching the file.
func (c *ConfigFile) SetContents(contents map[string]any) {
	c.contents = contents
}

// IsGlobal reports whether the file resolves against the home directory.
func (c *ConfigFile) IsGlobal() bool {
	return c.opts.IsGlobal
}
