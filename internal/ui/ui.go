// Package ui implements the interactive terminal viewer. It renders a
// Lox source file alongside its token stream, syntax tree, and evaluated
// result, and reloads the views when the file changes on disk.
package ui

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Config holds the viewer options.
type Config struct {
	// Path is the Lox source file to display.
	Path string

	// Watch reloads the views when the file changes on disk.
	Watch bool

	// Logger receives debug output. A nil logger discards everything.
	Logger *slog.Logger
}

// Run starts the viewer and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(cfg.Path), tea.WithAltScreen(), tea.WithContext(ctx))

	eg, egctx := errgroup.WithContext(ctx)

	if cfg.Watch {
		eg.Go(func() error {
			return watchFile(egctx, cfg.Path, cfg.Logger, func() {
				p.Send(fileChangedMsg{})
			})
		})
	}

	eg.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return eg.Wait()
}

// watchFile calls notify whenever path is written. Events are debounced
// because editors fire several in quick succession for a single save.
func watchFile(ctx context.Context, path string, logger *slog.Logger, notify func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directory rather than the file: editors that
	// save via rename replace the inode and would drop a file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				logger.Debug("source file changed, reloading", "file", path)
				notify()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
