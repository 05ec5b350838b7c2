package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderCommandPalette draws the palette overlay: an input echo line plus the
// filtered commands list, boxed in the Vitesse border style.
func renderCommandPalette(width int, value string, cmds []SlashCmd, sel int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	nameWidth := 12
	border := BorderStyle()
	text := lipgloss.NewStyle().Foreground(Vitesse.Text)
	prompt := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render("›")
	hl := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render

	var b strings.Builder
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	in := fmt.Sprintf(" %s %s", prompt, text.Render(value))
	if xansi.StringWidth(in) > inner {
		in = xansi.Truncate(in, inner, "")
	}
	b.WriteString(border.Render("│"))
	b.WriteString(in + strings.Repeat(" ", maxInt(0, inner-xansi.StringWidth(in))))
	b.WriteString(border.Render("│") + "\n")

	maxItems := 8
	if len(cmds) > maxItems {
		cmds = cmds[:maxItems]
		if sel >= maxItems {
			sel = maxItems - 1
		}
	}
	if len(cmds) == 0 {
		line := "  no matches"
		b.WriteString(border.Render("│"))
		b.WriteString(line + strings.Repeat(" ", maxInt(0, inner-xansi.StringWidth(line))))
		b.WriteString(border.Render("│") + "\n")
	}
	for i, c := range cmds {
		line := fmt.Sprintf("  %-*s  %s", nameWidth, c.Name, dim(c.Desc))
		if xansi.StringWidth(line) > inner {
			line = xansi.Truncate(line, inner, "")
		}
		if i == sel {
			line = hl(line)
		}
		b.WriteString(border.Render("│"))
		b.WriteString(line + strings.Repeat(" ", maxInt(0, inner-xansi.StringWidth(line))))
		b.WriteString(border.Render("│") + "\n")
	}
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	b.WriteString("  ↑/↓ select · Enter run · Esc close\n")
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
