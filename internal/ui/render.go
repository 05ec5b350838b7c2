package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderBanner creates the welcome banner with extra lines inside the box.
func renderBanner(endpoint string, extra []string) string {
	lines := []string{
		"✻ itemctl — items management console",
		"",
	}
	if len(extra) > 0 {
		lines = append(lines, extra...)
		lines = append(lines, "")
	}
	lines = append(lines, fmt.Sprintf("endpoint: %s", endpoint))

	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	var sb strings.Builder
	sb.WriteString("╭" + strings.Repeat("─", max+2) + "╮\n")
	for _, ln := range lines {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString("│ ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString("╰" + strings.Repeat("─", max+2) + "╯\n")
	return sb.String()
}

// renderBox draws lines inside a full-width bordered box, used for the error
// banner and the delete confirmation overlay.
func renderBox(width int, lines []string, borderColor lipgloss.Color) string {
	w := width
	if w <= 0 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	border := lipgloss.NewStyle().Foreground(borderColor)
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	for _, ln := range lines {
		if xansi.StringWidth(ln) > inner {
			ln = xansi.Truncate(ln, inner, "…")
		}
		pad := inner - xansi.StringWidth(ln)
		sb.WriteString(border.Render("│"))
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(border.Render("│") + "\n")
	}
	sb.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	return sb.String()
}

// renderStatusBarStyled draws a chip-styled status bar with left and right
// aligned segments, trimming segments that do not fit.
func renderStatusBarStyled(width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	statusBarStyle := StatusBarBase()
	keyStyle := ChipKeyStyle().Inherit(statusBarStyle).MarginRight(1)
	nugget := lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Padding(0, 1)
	nuggetBG := []lipgloss.Color{Vitesse.Primary, Vitesse.Blue, Vitesse.Yellow, Vitesse.Magenta}

	leftItems := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			leftItems = append(leftItems, keyStyle.Render(s))
			continue
		}
		leftItems = append(leftItems, nugget.Background(nuggetBG[(i-1)%len(nuggetBG)]).Render(s))
	}
	rightItems := make([]string, 0, len(rightParts))
	for i, s := range rightParts {
		rightItems = append(rightItems, nugget.Background(nuggetBG[i%len(nuggetBG)]).Render(s))
	}

	rebuild := func(parts []string) (string, int) {
		s := strings.Join(parts, "")
		return s, xansi.StringWidth(s)
	}
	leftStr, lw := rebuild(leftItems)
	rightStr, rw := rebuild(rightItems)
	for lw+rw > w && len(leftItems) > 1 {
		leftItems = leftItems[:len(leftItems)-1]
		leftStr, lw = rebuild(leftItems)
	}
	for lw+rw > w && len(rightItems) > 0 {
		rightItems = rightItems[:len(rightItems)-1]
		rightStr, rw = rebuild(rightItems)
	}
	pad := w - lw - rw
	if pad < 0 {
		pad = 0
	}
	center := statusBarStyle.Render(strings.Repeat(" ", pad))
	return leftStr + center + rightStr
}
