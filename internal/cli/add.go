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
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("name", "", "item name (required unless interactive)")
	addCmd.Flags().String("desc", "", "item description")
	addCmd.Flags().String("category", "", "item category")
	addCmd.Flags().Float64("price", 0, "item price")
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new item",
	Long:  "Create a new item. With --name the item is submitted directly; without it an interactive form opens.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg := system.NewLogger("console")
		c := console.New(items.NewClient(config.Endpoint(), lg), lg)

		name, _ := cmd.Flags().GetString("name")
		desc, _ := cmd.Flags().GetString("desc")
		category, _ := cmd.Flags().GetString("category")
		price, _ := cmd.Flags().GetFloat64("price")

		if strings.TrimSpace(name) == "" {
			var err error
			name, desc, category, price, err = promptItem(name, desc, category, price)
			if err != nil {
				return err // form canceled or failed
			}
		}

		c.Draft = items.Item{Name: name, Description: desc, Category: category, Price: price}
		if err := c.Create(cmd.Context()); err != nil {
			return fmt.Errorf("%s", c.Err)
		}
		// the refetched list is authoritative; report the freshest record
		for _, it := range c.Items {
			if it.Name == name {
				cmd.Printf("✓ created %s (%s)\n", it.Name, it.ID)
				return nil
			}
		}
		cmd.Printf("✓ created %s\n", name)
		return nil
	},
}

// promptItem runs the interactive item form and returns the entered fields.
func promptItem(name, desc, category string, price float64) (string, string, string, float64, error) {
	priceStr := ""
	if price > 0 {
		priceStr = strconv.FormatFloat(price, 'f', -1, 64)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New item"),
			huh.NewInput().Title("Name").Placeholder("Widget").Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}).Value(&name),
			huh.NewInput().Title("Description").Placeholder("A widget").Value(&desc),
			huh.NewInput().Title("Category").Placeholder("tools (optional)").Value(&category),
			huh.NewInput().Title("Price").Placeholder("9.99").Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return nil
				}
				p, err := strconv.ParseFloat(s, 64)
				if err != nil || p < 0 {
					return fmt.Errorf("price must be a non-negative number")
				}
				return nil
			}).Value(&priceStr),
		),
	).WithWidth(60)
	if err := form.Run(); err != nil {
		return "", "", "", 0, err
	}
	price = 0
	if s := strings.TrimSpace(priceStr); s != "" {
		price, _ = strconv.ParseFloat(s, 64)
	}
	return name, desc, category, price, nil
}
