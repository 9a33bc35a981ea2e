package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// WatchFunc is called after each successful re-conversion with the source
// path, the output path, and the conversion result.
type WatchFunc func(src, out string, result *Result)

// Watch converts every .py file under dir once, then re-converts on each
// write or create event until the context is cancelled. Conversion errors
// for individual files are logged and do not stop the loop.
func (e *Engine) Watch(ctx context.Context, dir string, fn WatchFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Initial pass over existing sources.
	matches, err := filepath.Glob(filepath.Join(dir, "*.py"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	for _, path := range matches {
		e.convertAndWrite(ctx, path, fn)
	}

	e.logger.Info("watching for changes", "dir", dir, "dialect", e.dialect.Name)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".py") {
				continue
			}
			// Skip our own pure-mode output.
			if strings.HasSuffix(event.Name, ".cy.py") {
				continue
			}
			e.convertAndWrite(ctx, event.Name, fn)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "error", werr)
		}
	}
}

func (e *Engine) convertAndWrite(ctx context.Context, path string, fn WatchFunc) {
	result, err := e.ConvertFile(ctx, path)
	if err != nil {
		e.logger.Warn("conversion failed", "path", path, "error", err)
		return
	}
	out := e.OutputPath(path)
	if err := e.WriteFile(out, result.Output); err != nil {
		e.logger.Warn("write failed", "path", out, "error", err)
		return
	}
	if fn != nil {
		fn(path, out, result)
	}
}
