// Package watch re-runs a callback whenever a file is rewritten.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"draftscan/internal/logging"
)

// File watches path and calls fn after each burst of writes settles for
// debounce. The parent directory is watched so editors that save by
// replacing the file are seen too. Errors from fn are logged and watching
// continues. File returns ctx.Err() once ctx is done.
func File(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, fn func(context.Context) error) error {
	logger = logging.NewComponentLogger(logger, "watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching draft for changes", logging.String(logging.FieldDraftPath, target))

	var (
		timer  *time.Timer
		settle <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			settle = timer.C
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(logger, "file watcher reported an error", "watch_error",
				logging.Error(werr),
				logging.String(logging.FieldImpact, "a draft change may have been missed"))
		case <-settle:
			settle = nil
			logger.Debug("draft changed, re-running", logging.String(logging.FieldDraftPath, target))
			if err := fn(ctx); err != nil {
				logging.WarnWithContext(logger, "re-run after draft change failed", "watch_run_failed",
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "the editor may still be saving; the next change retries"),
					logging.String(logging.FieldImpact, "stores were left unchanged for this change"))
			}
		}
	}
}
