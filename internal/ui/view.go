package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	appver "itemctl/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	b := &strings.Builder{}

	switch m.mode {
	case modeHelp:
		b.WriteString(renderHelp(m.width))
		b.WriteString("\n  esc to go back\n")
		return zone.Scan(b.String())

	case modeForm:
		if m.form != nil {
			b.WriteString("\n")
			b.WriteString(m.form.View())
			b.WriteString("\n  esc discards without saving\n")
		}
		return zone.Scan(b.String())
	}

	b.WriteString(renderBanner(m.endpoint, nil))
	b.WriteString("\n")

	// error banner with dismiss control
	if m.errMsg != "" {
		msg := ErrorStyle().Render("✗ " + m.errMsg)
		b.WriteString(renderBox(m.width, []string{" " + msg + "   (x to dismiss)"}, Vitesse.Red))
		b.WriteString("\n")
	}

	// loading line or notice
	switch {
	case m.loading:
		fmt.Fprintf(b, "  %s loading…\n\n", m.spin.View())
	case m.notice != "":
		fmt.Fprintf(b, "  %s\n\n", AccentBold().Render(m.notice))
	case len(m.items) == 0:
		b.WriteString("  no items yet — press n to create one\n\n")
	}

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.mode == modeConfirmDelete {
		b.WriteString(m.renderDeleteConfirm())
	}

	// footer buttons (mouse-aware zones)
	b.WriteString("  ")
	b.WriteString(zone.Mark("btn.new", Button("n New")))
	b.WriteString(" ")
	b.WriteString(zone.Mark("btn.refresh", Button("r Refresh")))
	b.WriteString(" ")
	b.WriteString(zone.Mark("btn.help", Button("? Help")))
	b.WriteString("\n")

	if m.paletteOpen {
		b.WriteString(renderCommandPalette(m.width, m.paletteInput.View(), m.slashFiltered, m.slashIndex))
	} else {
		b.WriteString(m.renderStatusBarLine())
	}
	return zone.Scan(b.String())
}

// renderStatusBarLine builds the status bar placed under the footer buttons.
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}
	if m.hintText != "" && now.Before(m.hintUntil) {
		return renderStatusBarStyled(m.width, []string{"ITEMS", m.hintText}, []string{"v" + appver.AppVersion}) + "\n"
	}
	left := []string{"ITEMS", fmt.Sprintf("%d items", len(m.items)), m.endpoint}
	right := []string{now.Format("15:04:05"), "v" + appver.AppVersion}
	return renderStatusBarStyled(m.width, left, right) + "\n"
}

func (m model) renderDeleteConfirm() string {
	name := m.deleteTarget.Name
	if name == "" {
		name = m.deleteTarget.ID
	}
	del := "  Delete  "
	cancel := "  Cancel  "
	sel := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Red)
	dim := lipgloss.NewStyle().Foreground(Vitesse.Secondary)
	if m.confirmIndex == 0 {
		del = sel.Render(del)
		cancel = dim.Render(cancel)
	} else {
		del = dim.Render(del)
		cancel = sel.Render(cancel)
	}
	lines := []string{
		fmt.Sprintf("  delete %q? the server decides — no local existence check", name),
		"",
		"  " + del + "   " + cancel + "   (y/n, enter)",
	}
	return renderBox(m.width, lines, Vitesse.Red) + "\n"
}
