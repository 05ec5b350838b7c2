package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"itemctl/internal/config"
	"itemctl/internal/console"
	"itemctl/internal/items"
	"itemctl/internal/system"
)

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("name", "", "new name")
	editCmd.Flags().String("desc", "", "new description")
	editCmd.Flags().String("category", "", "new category")
	editCmd.Flags().Float64("price", -1, "new price")
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing item",
	Long:  "Fetch the item, apply flag overrides or open an interactive form, and PUT the result back.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		lg := system.NewLogger("console")
		c := console.New(items.NewClient(config.Endpoint(), lg), lg)
		if err := c.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("%s", c.Err)
		}

		idx := -1
		for i := range c.Items {
			if c.Items[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("item %q not found in collection", id)
		}
		c.StartEdit(idx)

		anyFlag := false
		if cmd.Flags().Changed("name") {
			c.Editing.Name, _ = cmd.Flags().GetString("name")
			anyFlag = true
		}
		if cmd.Flags().Changed("desc") {
			c.Editing.Description, _ = cmd.Flags().GetString("desc")
			anyFlag = true
		}
		if cmd.Flags().Changed("category") {
			c.Editing.Category, _ = cmd.Flags().GetString("category")
			anyFlag = true
		}
		if cmd.Flags().Changed("price") {
			c.Editing.Price, _ = cmd.Flags().GetFloat64("price")
			anyFlag = true
		}
		if !anyFlag {
			if err := promptEdit(c.Editing); err != nil {
				c.DiscardEdit()
				return err // form canceled; nothing sent
			}
		}

		if err := c.Update(cmd.Context()); err != nil {
			return fmt.Errorf("%s", c.Err)
		}
		cmd.Printf("✓ updated %s\n", id)
		return nil
	},
}

// promptEdit mutates the detached copy through an interactive form.
func promptEdit(it *items.Item) error {
	priceStr := strconv.FormatFloat(it.Price, 'f', -1, 64)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Edit item"),
			huh.NewInput().Title("Name").Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}).Value(&it.Name),
			huh.NewInput().Title("Description").Value(&it.Description),
			huh.NewInput().Title("Category").Value(&it.Category),
			huh.NewInput().Title("Price").Validate(func(s string) error {
				p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil || p < 0 {
					return fmt.Errorf("price must be a non-negative number")
				}
				return nil
			}).Value(&priceStr),
		),
	).WithWidth(60)
	if err := form.Run(); err != nil {
		return err
	}
	it.Price, _ = strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
	return nil
}
