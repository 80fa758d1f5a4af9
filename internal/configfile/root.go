package configfile

import (
	"fmt"
	"os"

	"github.com/stash-labs/stash/internal/project"
)

// ResolveRootFolder returns the base directory against which a config file
// path is computed. isGlobal is dynamically typed because option sets often
// arrive from parsed JSON or loosely typed flag maps; any non-bool value
// fails with ErrInvalidType. true resolves to the user's home directory,
// false delegates to the project locator, whose error propagates unchanged.
func ResolveRootFolder(isGlobal any) (string, error) {
	global, ok := isGlobal.(bool)
	if !ok {
		return "", fmt.Errorf("%w: got %T", ErrInvalidType, isGlobal)
	}
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return home, nil
	}
	return project.Resolve()
}
