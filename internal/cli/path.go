package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stash-labs/stash/internal/configfile"
)

var (
	pathGlobal bool
	pathState  bool
	pathSubdir string
)

func init() {
	pathCmd.Flags().BoolVarP(&pathGlobal, "global", "g", false, "Resolve against the home directory")
	pathCmd.Flags().BoolVar(&pathState, "state", false, "Nest under the hidden state folder")
	pathCmd.Flags().StringVar(&pathSubdir, "dir", "", "Subdirectory between the root and the filename")
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <filename>",
	Short: "Print the resolved path for a managed file",
	Long: `Resolve a filename the same way managed config and state files are
resolved: against the home directory with --global, otherwise against the
enclosing project root, nesting under the hidden state folder when --global
or --state is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := configfile.New(configfile.Options{
			Filename: args[0],
			IsGlobal: pathGlobal,
			IsState:  pathState,
			FilePath: pathSubdir,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Path())
		if !c.Exists() {
			fmt.Fprintln(cmd.ErrOrStderr(), "(file does not exist yet)")
		}
		return nil
	},
}
