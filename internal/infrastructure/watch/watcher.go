package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StoreWatcher fires a callback when the draft store changes on disk.
// SQLite in WAL mode journals into sidecar files next to the database, so
// the watcher monitors the containing directory and filters events down
// to the store file and its sidecars.
type StoreWatcher struct {
	watcher   *fsnotify.Watcher
	storePath string
	debounce  time.Duration
	onChange  func()
	logger    *slog.Logger
}

// NewStoreWatcher creates a watcher for the given store file.
func NewStoreWatcher(storePath string, debounce time.Duration, onChange func(), logger *slog.Logger) (*StoreWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 300 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreWatcher{
		watcher:   w,
		storePath: storePath,
		debounce:  debounce,
		onChange:  onChange,
		logger:    logger,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *StoreWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	dir := filepath.Dir(w.storePath)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange != nil {
			w.onChange()
		}
	})
	defer debouncer.Stop()

	// store.db, store.db-wal and store.db-shm all count.
	filter := storeFileFilter(filepath.Base(w.storePath))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevantOp(event.Op) {
				continue
			}
			if !filter.Matches(event.Name) {
				continue
			}

			w.logger.Debug("store changed", "path", event.Name, "op", event.Op.String())
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func relevantOp(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Write) ||
		op.Has(fsnotify.Remove) ||
		op.Has(fsnotify.Rename)
}
