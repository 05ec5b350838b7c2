package ui

import (
	"time"

	fsnotify "github.com/fsnotify/fsnotify"

	"itemctl/internal/items"
)

// Bubble Tea messages

// list refetch finished
type itemsLoadedMsg struct {
	items   []items.Item
	elapsed time.Duration
}

// any operation failed; op is one of fetch/create/update/delete
type opFailedMsg struct {
	op  string
	err error
}

// a mutation succeeded; triggers a full list refetch
type mutationDoneMsg struct {
	op string
	id string
}

// generic notifications and quit
type noticeMsg string

// periodic tick for the status bar clock
type tickMsg time.Time

// settings file watcher handshake and change notifications
type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch <-chan struct{}
}
type settingsChangedMsg struct{}
