package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"itemctl/internal/config"
	"itemctl/internal/items"
)

// Commands. Each network operation runs in its own tea.Cmd and reports back
// through a typed message; reconciliation happens on the event loop. In-flight
// calls are never aborted, so replies can arrive after newer user actions.

func fetchCmd(c *items.Client) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		list, err := c.List(context.Background())
		if err != nil {
			return opFailedMsg{op: "fetch", err: err}
		}
		return itemsLoadedMsg{items: list, elapsed: time.Since(start)}
	}
}

func createCmd(c *items.Client, draft items.Item) tea.Cmd {
	return func() tea.Msg {
		created, err := c.Create(context.Background(), draft)
		if err != nil {
			return opFailedMsg{op: "create", err: err}
		}
		return mutationDoneMsg{op: "create", id: created.ID}
	}
}

func updateCmd(c *items.Client, it items.Item) tea.Cmd {
	return func() tea.Msg {
		updated, err := c.Update(context.Background(), it)
		if err != nil {
			return opFailedMsg{op: "update", err: err}
		}
		return mutationDoneMsg{op: "update", id: updated.ID}
	}
}

func deleteCmd(c *items.Client, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.Delete(context.Background(), id); err != nil {
			return opFailedMsg{op: "delete", err: err}
		}
		return mutationDoneMsg{op: "delete", id: id}
	}
}

// periodic tick command
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// watchStartCmd starts the settings file watcher; best-effort.
func watchStartCmd() tea.Cmd {
	return func() tea.Msg {
		w, ch := config.Watch()
		if w == nil {
			return nil
		}
		return watchStartedMsg{w: w, ch: ch}
	}
}

// watchSubscribeCmd waits for the next settings change. The short sleep lets
// editors finish their write-rename dance before we re-read.
func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		time.Sleep(120 * time.Millisecond)
		return settingsChangedMsg{}
	}
}
