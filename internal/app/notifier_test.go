package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func appendTo(t *testing.T, path, s string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(s); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func startTestNotifier(t *testing.T, path string) (*atomic.Int32, chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var count atomic.Int32
	fired := make(chan struct{}, 16)
	stop, err := StartNotifier(ctx, path, func() {
		count.Add(1)
		fired <- struct{}{}
	}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("StartNotifier: %v", err)
	}
	t.Cleanup(stop)
	return &count, fired
}

func TestNotifier_FiresOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	appendTo(t, path, "one\n")
	_, fired := startTestNotifier(t, path)

	appendTo(t, path, "two\n")
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier did not fire after write")
	}
}

func TestNotifier_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	appendTo(t, path, "one\n")
	count, _ := startTestNotifier(t, path)

	appendTo(t, filepath.Join(dir, "other.log"), "noise\n")
	time.Sleep(4 * notifyDebounce)
	if got := count.Load(); got != 0 {
		t.Fatalf("notifier fired %d times for another file", got)
	}
}

func TestNotifier_DebouncesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	appendTo(t, path, "start\n")
	count, fired := startTestNotifier(t, path)

	const writes = 20
	for i := 0; i < writes; i++ {
		appendTo(t, path, "line\n")
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier did not fire after burst")
	}
	time.Sleep(4 * notifyDebounce)
	if got := count.Load(); got >= writes {
		t.Fatalf("notifier fired %d times for %d writes, want coalesced", got, writes)
	}
}

func TestNotifier_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	appendTo(t, path, "one\n")
	stop, err := StartNotifier(context.Background(), path, func() {}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("StartNotifier: %v", err)
	}
	stop()
	stop()
}

func TestNotifier_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "app.log")
	if _, err := StartNotifier(context.Background(), path, func() {}, slog.New(slog.DiscardHandler)); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
