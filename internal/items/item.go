package items

import (
	"errors"
	"fmt"
	"strings"
)

// Item is the managed resource record. The id is assigned by the server and
// absent before creation.
type Item struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
}

// Validate reports whether the item is persistable: the name must be
// non-empty after trimming whitespace, and the price non-negative.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return errors.New("item name is required")
	}
	if it.Price < 0 {
		return fmt.Errorf("item price must not be negative (got %v)", it.Price)
	}
	return nil
}

// HasID reports whether the item carries a usable server-assigned id.
func (it Item) HasID() bool { return strings.TrimSpace(it.ID) != "" }

// FormatPrice renders the price badge shown in lists, e.g. "$9.99".
func FormatPrice(p float64) string { return fmt.Sprintf("$%.2f", p) }
