package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stash-labs/stash/internal/branding"
	"github.com/stash-labs/stash/internal/updater"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u := updater.New(buildVersion)

		release, err := u.CheckLatestVersion()
		if err != nil {
			return fmt.Errorf("checking latest version: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			return fmt.Errorf("comparing versions: %w", err)
		}

		if !available {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is up to date.\n", branding.CLIName(), buildVersion)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Update available: %s -> %s\n", buildVersion, release.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Release notes: %s\n", release.HTMLURL)
		return nil
	},
}
