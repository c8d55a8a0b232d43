package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/ratlog/internal/config"
	"github.com/five82/ratlog/internal/logging"
	"github.com/five82/ratlog/internal/logtail"
	"github.com/five82/ratlog/internal/prefs"
	"github.com/five82/ratlog/internal/ui"
)

// Options configure the ratlog application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/ratlog/prefs.toml
	// LogPath is the file to view. Empty shows the built-in sample lines.
	LogPath string
	Poll    time.Duration // zero uses the configured interval
	Follow  bool          // start in live mode
}

// Run boots the ratlog TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Poll > 0 {
		cfg.PollInterval = config.ClampPoll(opts.Poll)
	}
	if opts.Follow {
		cfg.Follow = true
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	session, err := openSession(opts.LogPath, cfg)
	if err != nil {
		return err
	}
	logStartup(logger.Logger, session)

	p := ui.NewProgram(ctx, ui.Options{
		Session:   session,
		Logger:    logger.Logger,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		PollTick:  cfg.PollInterval,
		Follow:    cfg.Follow,
	})

	if cfg.Watch && session.CanFollow() {
		stop, err := StartNotifier(ctx, session.Path(), func() { p.Send(ui.FileChangedMsg{}) }, logger.Logger)
		if err != nil {
			logger.Warn("file watch disabled", "path", session.Path(), "error", err)
		} else {
			defer stop()
		}
	}

	return ui.Run(ctx, p)
}

// openSession loads path, or the sample lines when path is empty.
func openSession(path string, cfg config.Config) (*logtail.Session, error) {
	if path == "" {
		return logtail.NewSample(), nil
	}
	session, err := logtail.Open(path, logtail.Options{KeepBlankLines: cfg.KeepBlankLines})
	if err != nil {
		return nil, fmt.Errorf("load log: %w", err)
	}
	return session, nil
}

func logStartup(logger *slog.Logger, s *logtail.Session) {
	buf := s.Buffer()
	logger.Info("session opened",
		"path", s.Path(),
		"strategy", s.Strategy().String(),
		"size", s.Size(),
		"kept", buf.Len(),
		"first_line", buf.FirstLine(),
		"offset", s.Cursor().Offset,
	)
}
