package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"itemctl/internal/items"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of an item record",
	Long:  "Print the JSON Schema describing the item wire shape, for validating collection responses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := items.MarshalSchema(items.ItemSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
