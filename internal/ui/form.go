package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// itemDraft holds the form-bound fields for a new or in-edit item. Price is
// edited as text and parsed on save.
type itemDraft struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       string
}

// price parses the price field; empty defaults to 0.
func (d itemDraft) price() (float64, error) {
	s := strings.TrimSpace(strings.TrimPrefix(d.Price, "$"))
	if s == "" {
		return 0, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("price must be a number")
	}
	if p < 0 {
		return 0, errors.New("price must not be negative")
	}
	return p, nil
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validatePrice(s string) error {
	_, err := itemDraft{Price: s}.price()
	return err
}

// formTheme adapts the charm huh theme to the Vitesse palette.
func formTheme() *huh.Theme {
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(14).Foreground(Vitesse.Secondary)
	theme.Focused.Title = theme.Focused.Title.Width(14).Foreground(Vitesse.Primary).Bold(true)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(Vitesse.Primary)
	return theme
}

// newItemForm builds the create/edit form over the given draft.
func newItemForm(d *itemDraft, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Placeholder("Widget").
				Validate(validateName).
				Value(&d.Name),
			huh.NewInput().
				Title("Description").
				Placeholder("A widget").
				Value(&d.Description),
			huh.NewInput().
				Title("Category").
				Placeholder("tools (optional)").
				Value(&d.Category),
			huh.NewInput().
				Title("Price").
				Placeholder("9.99").
				Validate(validatePrice).
				Value(&d.Price),
		),
	).WithTheme(formTheme()).WithWidth(60).WithShowHelp(false)
}
