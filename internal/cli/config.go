package cli

import (
	"github.com/spf13/cobra"

	"itemctl/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().String("base", "", "collection root URL")
	configSetCmd.Flags().String("path", "", "collection path suffix")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved endpoint configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("base:     %s\n", config.BaseURL())
		cmd.Printf("path:     %s\n", config.APIPath())
		cmd.Printf("endpoint: %s\n", config.Endpoint())
		if p, err := config.SettingsPath(); err == nil {
			cmd.Printf("settings: %s\n", p)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist endpoint settings",
	Long:  "Write base URL and/or path suffix to the settings file. Environment variables still take precedence. A running TUI picks the change up live.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("base") {
			s.BaseURL, _ = cmd.Flags().GetString("base")
		}
		if cmd.Flags().Changed("path") {
			s.APIPath, _ = cmd.Flags().GetString("path")
		}
		if err := config.SaveSettings(s); err != nil {
			return err
		}
		cmd.Printf("✓ saved — endpoint now %s\n", config.Endpoint())
		return nil
	},
}
