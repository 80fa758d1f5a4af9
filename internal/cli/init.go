package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stash-labs/stash/internal/branding"
	"github.com/stash-labs/stash/internal/platform"
	"github.com/stash-labs/stash/internal/project"
)

var (
	initGlobal bool
	initName   string
)

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "Initialize the per-user state folder (~/.stash/)")
	initCmd.Flags().StringVar(&initName, "name", "", "Project name written to the marker file (defaults to the directory name)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize " + branding.DisplayName() + " files",
	Long: `Initialize ` + branding.DisplayName() + ` for the current directory.

Without flags, writes a ` + project.MarkerFile + ` marker and a local state folder in the
current directory. With --global, creates the per-user state folder under
the home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initGlobal {
			return runGlobalInit(cmd)
		}
		return runProjectInit(cmd)
	},
}

func runGlobalInit(cmd *cobra.Command) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, branding.StateDir())
	fmt.Fprintf(cmd.OutOrStdout(), "Initializing global state folder at %s\n", dir)
	return ensureDir(cmd.OutOrStdout(), dir, 0755)
}

func runProjectInit(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	name := initName
	if name == "" {
		name = filepath.Base(cwd)
	}

	if err := project.WriteMarker(cwd, &project.Marker{Name: name}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] Created %s\n", filepath.Join(cwd, project.MarkerFile))

	if err := ensureDir(cmd.OutOrStdout(), filepath.Join(cwd, branding.StateDir()), 0755); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nProject %q initialized.\n", name)
	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
