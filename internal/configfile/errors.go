package configfile

import "errors"

// Sentinel errors for the configfile operations. Callers discriminate with
// errors.Is. Read misses surface as fs.ErrNotExist from the underlying
// filesystem and are suppressed only by Read.
var (
	// ErrInvalidType reports a non-boolean isGlobal value passed to
	// ResolveRootFolder.
	ErrInvalidType = errors.New("isGlobal must be a boolean")

	// ErrMissingFilename reports construction without a filename.
	ErrMissingFilename = errors.New("filename is required")

	// ErrTargetNotFound reports an Unlink of a file that does not exist.
	ErrTargetNotFound = errors.New("target file does not exist")
)
