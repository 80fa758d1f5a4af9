package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/stash-labs/stash/internal/branding"
	"github.com/stash-labs/stash/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps JSON configuration and state files for development tools,
resolved against either the user's home directory or the enclosing project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Update and version commands manage their own version output.
		name := cmd.Name()
		if name == "update" || name == "version" {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
