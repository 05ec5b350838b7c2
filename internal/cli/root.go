package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"itemctl/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "itemctl",
	Short: "itemctl – items management console",
	Long:  "itemctl lists, creates, edits and deletes item records against a REST collection endpoint, interactively or via subcommands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
