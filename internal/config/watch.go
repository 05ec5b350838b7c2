package config

import (
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"
)

// Watch starts an fsnotify watcher on the config directory and returns a
// coalescing notification channel that receives when the settings file
// changes. Close the returned watcher to stop. Best-effort: a nil watcher is
// returned when watching is unavailable.
func Watch() (*fsnotify.Watcher, <-chan struct{}) {
	dir, err := Dir()
	if err != nil {
		return nil, nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil
	}
	// the directory may not exist yet; watching it is best-effort
	_ = w.Add(dir)
	ch := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != "settings.json" {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w, ch
}
