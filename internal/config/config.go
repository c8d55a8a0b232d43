package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings for ratlog.
type Config struct {
	PollInterval   time.Duration
	Follow         bool
	Watch          bool
	KeepBlankLines bool
	// LogFile is where ratlog writes its own diagnostics. Empty disables them.
	LogFile  string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/ratlog/config.toml"
	defaultLogFile    = "~/.local/state/ratlog/ratlog.log"
	defaultLogLevel   = "info"

	defaultPollInterval = 400 * time.Millisecond
	minPollInterval     = 50 * time.Millisecond
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PollInterval: defaultPollInterval,
		Watch:        true,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load reads the ratlog config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PollMS         int    `toml:"poll_ms"`
		Follow         bool   `toml:"follow"`
		Watch          *bool  `toml:"watch"`
		KeepBlankLines bool   `toml:"keep_blank_lines"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.PollMS > 0 {
		cfg.PollInterval = ClampPoll(time.Duration(raw.PollMS) * time.Millisecond)
	}
	cfg.Follow = raw.Follow
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	cfg.KeepBlankLines = raw.KeepBlankLines

	switch logFile := strings.TrimSpace(raw.LogFile); strings.ToLower(logFile) {
	case "":
	case "-", "off":
		cfg.LogFile = ""
	default:
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		if !slices.Contains(logLevels, level) {
			return Config{}, fmt.Errorf("parse config: unknown log_level %q", raw.LogLevel)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ClampPoll raises d to the minimum poll interval.
func ClampPoll(d time.Duration) time.Duration {
	return max(d, minPollInterval)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
