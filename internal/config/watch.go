package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"krishisakha/internal/logging"
)

// Watch reloads the config at path whenever it changes and passes the result
// to fn. A reload that fails to parse or validate is reported with a nil
// config; the caller keeps whatever it had. The parent directory is watched
// rather than the file so that editors which replace the file on save still
// trigger a reload. Watch blocks until ctx is cancelled and returns nil then.
func Watch(ctx context.Context, path string, debounce *ReloadDebouncer, fn func(*Config, error)) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if debounce == nil {
		debounce = NewReloadDebouncer(DefaultReloadDebounce)
	}
	defer debounce.Cancel()

	log := logging.Get(logging.CategoryConfig)
	log.Info("watching %s", path)
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("config event: %s", ev)
			debounce.Schedule(func() {
				if ctx.Err() != nil {
					return
				}
				cfg, err := Load(path)
				if err != nil {
					log.Warn("reload failed: %v", err)
					fn(nil, err)
					return
				}
				log.Info("config reloaded")
				fn(cfg, nil)
			})

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error: %v", err)
		}
	}
}
