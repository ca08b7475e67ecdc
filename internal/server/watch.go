package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

// DataWatcher reloads the topic dataset when its file changes on disk.
type DataWatcher struct {
	path        string
	watcher     *fsnotify.Watcher
	logger      *zap.Logger
	debounceDur time.Duration
	onReload    func(*topic.Store)
}

// NewDataWatcher watches the directory holding path, since editors often
// replace files by renaming over them.
func NewDataWatcher(path string, logger *zap.Logger, onReload func(*topic.Store)) (*DataWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &DataWatcher{
		path:        abs,
		watcher:     watcher,
		logger:      logger,
		debounceDur: 300 * time.Millisecond,
		onReload:    onReload,
	}, nil
}

// Run processes file events until ctx is cancelled. Rapid saves are collapsed
// into a single reload once they settle.
func (dw *DataWatcher) Run(ctx context.Context) {
	defer dw.watcher.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != dw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.Now()

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Warn("watcher error", zap.Error(err))

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < dw.debounceDur {
				continue
			}
			pending = time.Time{}
			dw.reload()
		}
	}
}

// reload loads and validates the dataset. A broken file keeps the previous
// store in place.
func (dw *DataWatcher) reload() {
	store, err := topic.LoadStore(dw.path)
	if err != nil {
		dw.logger.Warn("dataset reload failed, keeping previous version",
			zap.String("path", dw.path), zap.Error(err))
		return
	}
	dw.logger.Info("dataset reloaded", zap.String("path", dw.path), zap.Int("topics", store.Len()))
	if dw.onReload != nil {
		dw.onReload(store)
	}
}
