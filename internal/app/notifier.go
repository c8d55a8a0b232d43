package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// notifyDebounce coalesces bursts of writes into one wakeup.
const notifyDebounce = 100 * time.Millisecond

// StartNotifier watches path and calls send shortly after it is written or
// recreated. It returns immediately; stop releases the watcher and waits for
// the background goroutine to exit.
//
// The parent directory is watched rather than the file so that an editor's
// rename-and-replace still produces events.
func StartNotifier(ctx context.Context, path string, send func(), logger *slog.Logger) (stop func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		watchLoop(ctx, done, watcher, filepath.Base(abs), send, logger)
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() {
			close(done)
			_ = watcher.Close()
			wg.Wait()
		})
	}
	return stop, nil
}

func watchLoop(ctx context.Context, done <-chan struct{}, w *fsnotify.Watcher, base string, send func(), logger *slog.Logger) {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if fire == nil {
				fire = time.After(notifyDebounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("file watch error", "error", err)

		case <-fire:
			fire = nil
			send()
		}
	}
}
