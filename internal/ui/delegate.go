package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"itemctl/internal/items"
)

// listEntry adapts an item record to the bubbles list.
type listEntry struct {
	it items.Item
}

func (e listEntry) Title() string {
	return e.it.Name + "  " + PriceBadge(items.FormatPrice(e.it.Price))
}

func (e listEntry) Description() string {
	desc := e.it.Description
	if strings.TrimSpace(e.it.Category) != "" {
		desc += "  " + CategoryChip(e.it.Category)
	}
	return desc
}

func (e listEntry) FilterValue() string {
	return e.it.Name + " " + e.it.Description + " " + e.it.Category
}

// newItemList constructs the item list with the Vitesse-adapted delegate.
func newItemList() list.Model {
	d := list.NewDefaultDelegate()
	s := list.NewDefaultItemStyles()
	s.NormalTitle = s.NormalTitle.Foreground(Vitesse.Text)
	s.NormalDesc = s.NormalDesc.Foreground(Vitesse.Secondary)
	s.SelectedTitle = s.SelectedTitle.
		BorderForeground(Vitesse.Primary).
		Foreground(Vitesse.Primary)
	s.SelectedDesc = s.SelectedDesc.
		Foreground(Vitesse.Primary)
	s.DimmedTitle = s.DimmedTitle.Foreground(Vitesse.Secondary)
	s.DimmedDesc = s.DimmedDesc.Foreground(Vitesse.Muted)
	s.FilterMatch = lipgloss.NewStyle().Foreground(Vitesse.Yellow).Underline(true)
	d.Styles = s

	l := list.New(nil, d, 60, 14)
	ls := list.DefaultStyles()
	ls.Title = ls.Title.Foreground(Vitesse.Text)
	ls.PaginationStyle = ls.PaginationStyle.Foreground(Vitesse.Secondary)
	ls.HelpStyle = ls.HelpStyle.Foreground(Vitesse.Muted)
	ls.StatusBar = ls.StatusBar.Foreground(Vitesse.Secondary)
	l.Styles = ls
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowPagination(true)
	return l
}

// setListItems replaces the list content, keeping the cursor in range.
func setListItems(l *list.Model, its []items.Item) {
	entries := make([]list.Item, 0, len(its))
	for _, it := range its {
		entries = append(entries, listEntry{it: it})
	}
	l.SetItems(entries)
	if l.Index() >= len(entries) && len(entries) > 0 {
		l.Select(len(entries) - 1)
	}
}

// selectedItem returns the item under the cursor, ok=false when empty.
func selectedItem(l list.Model) (items.Item, bool) {
	e, ok := l.SelectedItem().(listEntry)
	if !ok {
		return items.Item{}, false
	}
	return e.it, true
}
