package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/termsync/internal/logging"
)

// Watcher reloads the config file when it changes on disk.
type Watcher struct {
	watcher   *fsnotify.Watcher
	paths     *Paths
	onChanged func(*Config)
	debounce  time.Duration
	closeOnce sync.Once
}

// NewWatcher watches the directory holding the config file. Editors often
// replace the file by rename, which drops a watch on the file itself.
func NewWatcher(paths *Paths, onChanged func(*Config)) (*Watcher, error) {
	if err := paths.EnsureDirectories(); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(paths.ConfigPath)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Watcher{
		watcher:   w,
		paths:     paths,
		onChanged: onChanged,
		debounce:  100 * time.Millisecond,
	}, nil
}

// Run processes file system events until the context is canceled or the
// watcher closes. Invalid configs are logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	target := filepath.Clean(w.paths.ConfigPath)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadFrom(w.paths)
			if err != nil {
				logging.WithError(err, "config reload")
				continue
			}
			logging.Info("config reloaded from %s", w.paths.ConfigPath)
			if w.onChanged != nil {
				w.onChanged(cfg)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("config watcher: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
