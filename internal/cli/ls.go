package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"itemctl/internal/config"
	"itemctl/internal/console"
	"itemctl/internal/items"
	"itemctl/internal/system"
)

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().Bool("json", false, "print raw JSON instead of a table")
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List items from the collection endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg := system.NewLogger("console")
		c := console.New(items.NewClient(config.Endpoint(), lg), lg)
		if err := c.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("%s", c.Err)
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printItemsJSON(cmd, c.Items)
		}
		printItemsTable(cmd, c.Items)
		return nil
	},
}

func printItemsTable(cmd *cobra.Command, list []items.Item) {
	if len(list) == 0 {
		cmd.Println("no items")
		return
	}
	header := lipgloss.NewStyle().Bold(true).Render
	cmd.Println(header(fmt.Sprintf("%-36s  %-20s  %-12s  %8s  %s", "ID", "NAME", "CATEGORY", "PRICE", "DESCRIPTION")))
	for _, it := range list {
		cat := it.Category
		if strings.TrimSpace(cat) == "" {
			cat = "-"
		}
		cmd.Println(fmt.Sprintf("%-36s  %-20s  %-12s  %8s  %s", it.ID, it.Name, cat, items.FormatPrice(it.Price), it.Description))
	}
}
