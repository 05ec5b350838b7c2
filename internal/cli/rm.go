package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"itemctl/internal/config"
	"itemctl/internal/console"
	"itemctl/internal/items"
	"itemctl/internal/system"
)

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an item by id",
	Long:  "Delete an item. No local existence check is made; the server response decides.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmed := false
			prompt := huh.NewConfirm().
				Title(fmt.Sprintf("Delete item %s?", id)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed)
			if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
				return err
			}
			if !confirmed {
				cmd.Println("canceled")
				return nil
			}
		}

		lg := system.NewLogger("console")
		c := console.New(items.NewClient(config.Endpoint(), lg), lg)
		if err := c.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", c.Err)
		}
		cmd.Printf("✓ deleted %s\n", id)
		return nil
	},
}
