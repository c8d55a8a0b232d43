package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/ratlog/internal/config"
	"github.com/five82/ratlog/internal/logtail"
)

func TestOpenSession_EmptyPathUsesSample(t *testing.T) {
	s, err := openSession("", config.Default())
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	if s.Strategy() != logtail.StrategySample {
		t.Fatalf("strategy = %v, want sample", s.Strategy())
	}
	if s.CanFollow() {
		t.Fatalf("sample session should not follow")
	}
}

func TestOpenSession_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	_, err := openSession(path, config.Default())
	if !errors.Is(err, logtail.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOpenSession_KeepBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.Default()
	cfg.KeepBlankLines = true
	s, err := openSession(path, cfg)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("\nb\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	_ = f.Close()

	res, err := s.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if res.Appended != 2 {
		t.Fatalf("appended = %d, want 2 (blank kept)", res.Appended)
	}
}
