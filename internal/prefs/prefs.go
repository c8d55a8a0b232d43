// Package prefs handles ratlog display preferences persistence.
// Preferences are stored in ~/.config/ratlog/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the display choices made in the settings panel.
type Prefs struct {
	Theme       string `toml:"theme"`
	Accent      string `toml:"accent"`
	TextColor   string `toml:"text_color"`
	TextStyle   string `toml:"text_style"`
	BorderColor string `toml:"border_color"`
	StatusColor string `toml:"status_color"`
}

// Allowed values for each knob. The first entry of every list is not
// necessarily the default; see Default.
var (
	Accents      = []string{"Cyan", "Green", "Yellow", "Magenta", "Blue"}
	TextColors   = []string{"White", "Gray", "Cyan", "Green", "Yellow"}
	TextStyles   = []string{"Normal", "Bold", "Dim"}
	BorderColors = []string{"White", "Gray", "Dark"}
	StatusColors = []string{"Gray", "Dark", "White"}
)

const (
	defaultPrefsPath = "~/.config/ratlog/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing has been saved.
func Default() Prefs {
	return Prefs{
		Theme:       defaultTheme,
		Accent:      "Cyan",
		TextColor:   "White",
		TextStyle:   "Normal",
		BorderColor: "Gray",
		StatusColor: "Gray",
	}
}

// Normalize replaces unknown or empty values with their defaults and fixes
// the case of known ones.
func (p Prefs) Normalize() Prefs {
	def := Default()
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = def.Theme
	}
	p.Accent = lookup(Accents, p.Accent, def.Accent)
	p.TextColor = lookup(TextColors, p.TextColor, def.TextColor)
	p.TextStyle = lookup(TextStyles, p.TextStyle, def.TextStyle)
	p.BorderColor = lookup(BorderColors, p.BorderColor, def.BorderColor)
	p.StatusColor = lookup(StatusColors, p.StatusColor, def.StatusColor)
	return p
}

// Cycle returns the option delta steps away from current, wrapping around.
// An unknown current value starts from the first option.
func Cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	i := 0
	for j, opt := range options {
		if strings.EqualFold(opt, current) {
			i = j
			break
		}
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

func lookup(options []string, value, fallback string) string {
	value = strings.TrimSpace(value)
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return opt
		}
	}
	return fallback
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Default(), nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Default(), nil // Graceful degradation
	}

	return p.Normalize(), nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
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
