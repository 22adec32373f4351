package store

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dokonepal/doko/internal/refresh"
)

// reloadDebounce coalesces bursts of file events into one reload.
const reloadDebounce = 300 * time.Millisecond

// Watch starts an fsnotify watcher on the data directory and reloads the
// store when a collection file changes on disk, so external edits to the
// JSON files show up without a restart. onReload (if non-nil) runs after
// each successful reload.
//
// Writes the store makes itself also fire events; the debounce absorbs
// those together with any external edit made in the same window, and an
// extra reload of unchanged data is harmless.
func (s *Store) Watch(ctx context.Context, dataDir string, logger *slog.Logger, onReload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dataDir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("dir", dataDir))

	reload := refresh.NewDebouncer(reloadDebounce, func() {
		if err := s.Load(); err != nil {
			logger.Warn("watcher: reload failed", slog.String("error", err.Error()))
			return
		}
		logger.Debug("watcher: reloaded collections")
		if onReload != nil {
			onReload()
		}
	})
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			reload.Trigger()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
