package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SlashCmd is one entry in the command palette.
type SlashCmd struct {
	Name    string
	Aliases []string
	Desc    string
}

var slashCmds = []SlashCmd{
	{Name: "/refresh", Aliases: []string{"/fetch", "/reload"}, Desc: "Refetch the item list"},
	{Name: "/new", Aliases: []string{"/create", "/add"}, Desc: "Create a new item"},
	{Name: "/edit", Desc: "Edit the selected item"},
	{Name: "/delete", Aliases: []string{"/rm"}, Desc: "Delete the selected item"},
	{Name: "/dismiss", Desc: "Dismiss the error banner"},
	{Name: "/help", Desc: "Show the help screen"},
	{Name: "/exit", Aliases: []string{"/quit"}, Desc: "Quit itemctl"},
}

// slashSource adapts the command table for fuzzy matching on names.
type slashSource []SlashCmd

func (s slashSource) String(i int) string { return s[i].Name }
func (s slashSource) Len() int            { return len(s) }

// filterSlashCommands ranks commands against the typed query. A bare "/"
// shows everything; otherwise fuzzy-match on names, falling back to alias
// prefixes so "/rm" still finds "/delete".
func filterSlashCommands(query string) []SlashCmd {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" || q == "/" {
		return slashCmds
	}
	matches := fuzzy.FindFrom(strings.TrimPrefix(q, "/"), slashSource(slashCmds))
	res := make([]SlashCmd, 0, len(matches))
	seen := map[string]bool{}
	for _, mt := range matches {
		res = append(res, slashCmds[mt.Index])
		seen[slashCmds[mt.Index].Name] = true
	}
	for _, c := range slashCmds {
		if seen[c.Name] {
			continue
		}
		for _, a := range c.Aliases {
			if strings.HasPrefix(strings.ToLower(a), q) {
				res = append(res, c)
				break
			}
		}
	}
	return res
}

func (m *model) refreshSlash() {
	v := m.paletteInput.Value()
	m.slashFiltered = filterSlashCommands(v)
	if m.slashIndex >= len(m.slashFiltered) {
		m.slashIndex = 0
	}
}
