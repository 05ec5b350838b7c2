package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"itemctl/internal/items"
)

func printItemsJSON(cmd *cobra.Command, list []items.Item) error {
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(b))
	return nil
}
