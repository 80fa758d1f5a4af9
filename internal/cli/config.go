package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stash-labs/stash/internal/settings"
)

var configGlobal bool

func init() {
	configCmd.PersistentFlags().BoolVarP(&configGlobal, "global", "g", false, "Operate on the per-user settings file")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `Read and write settings stored in config.json, either per-user
(~/.stash/config.json) or project-local (<project>/.stash/config.json).`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(configGlobal)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(configGlobal)
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		s.Set(key, value)
		if err := s.Save(); err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(configGlobal)
		if err != nil {
			return err
		}
		if !s.Unset(args[0]) {
			return fmt.Errorf("key %q is not set", args[0])
		}
		if err := s.Save(); err != nil {
			return fmt.Errorf("unsetting %q: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(configGlobal)
		if err != nil {
			return err
		}
		for _, key := range s.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, s.Get(key))
		}
		return nil
	},
}
