package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ratlog/internal/prefs"
)

// Theme is a named palette. The settings knobs pick individual colours out
// of it, so every knob value looks right in every theme.
type Theme struct {
	Name string

	Background  string
	Surface     string
	SelectionBg string

	Border      string
	BorderMuted string

	Text  string
	Muted string
	Faint string

	Cyan    string
	Green   string
	Yellow  string
	Magenta string
	Blue    string
	Red     string
}

// Styles contains the Lipgloss styles that do not depend on preferences.
type Styles struct {
	Surface     lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Green)),
		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Yellow)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Red)).
			Bold(true),
		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Cyan)),
	}
}

// Look holds the styles chosen through the settings panel.
type Look struct {
	AccentColor lipgloss.Color
	BorderColor lipgloss.Color

	Accent    lipgloss.Style
	Highlight lipgloss.Style
	LogText   lipgloss.Style
	Status    lipgloss.Style
}

// Look resolves the preference knobs against this theme.
func (t Theme) Look(p prefs.Prefs) Look {
	accent := lipgloss.Color(t.accent(p.Accent))

	logText := lipgloss.NewStyle().Foreground(lipgloss.Color(t.textColor(p.TextColor)))
	switch p.TextStyle {
	case "Bold":
		logText = logText.Bold(true)
	case "Dim":
		logText = logText.Faint(true)
	}

	return Look{
		AccentColor: accent,
		BorderColor: lipgloss.Color(t.borderColor(p.BorderColor)),
		Accent:      lipgloss.NewStyle().Foreground(accent),
		Highlight:   lipgloss.NewStyle().Foreground(accent).Bold(true).Reverse(true),
		LogText:     logText,
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.statusColor(p.StatusColor))).
			Background(lipgloss.Color(t.Surface)),
	}
}

func (t Theme) accent(name string) string {
	switch name {
	case "Green":
		return t.Green
	case "Yellow":
		return t.Yellow
	case "Magenta":
		return t.Magenta
	case "Blue":
		return t.Blue
	default:
		return t.Cyan
	}
}

func (t Theme) textColor(name string) string {
	switch name {
	case "Gray":
		return t.Muted
	case "Cyan":
		return t.Cyan
	case "Green":
		return t.Green
	case "Yellow":
		return t.Yellow
	default:
		return t.Text
	}
}

func (t Theme) borderColor(name string) string {
	switch name {
	case "White":
		return t.Text
	case "Dark":
		return t.BorderMuted
	default:
		return t.Border
	}
}

func (t Theme) statusColor(name string) string {
	switch name {
	case "Dark":
		return t.Faint
	case "White":
		return t.Text
	default:
		return t.Muted
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:        "Nightfox",
		Background:  "#131a24", // bg0
		Surface:     "#192330", // bg1
		SelectionBg: "#2b3b51", // sel0
		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		Text:        "#cdcecf", // fg1
		Muted:       "#738091", // comment
		Faint:       "#71839b", // fg3
		Cyan:        "#63cdcf",
		Green:       "#81b29a",
		Yellow:      "#dbc074",
		Magenta:     "#9d79d6",
		Blue:        "#719cd6",
		Red:         "#c94f6d",
	}
}

func kanagawaTheme() Theme {
	// https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:        "Kanagawa",
		Background:  "#16161D", // sumiInk0
		Surface:     "#1F1F28", // sumiInk3
		SelectionBg: "#2D4F67", // waveBlue1
		Border:      "#54546D", // sumiInk6
		BorderMuted: "#2A2A37", // sumiInk4
		Text:        "#DCD7BA", // fujiWhite
		Muted:       "#C8C093", // oldWhite
		Faint:       "#727169", // fujiGray
		Cyan:        "#7FB4CA", // springBlue
		Green:       "#98BB6C", // springGreen
		Yellow:      "#E6C384", // carpYellow
		Magenta:     "#957FB8", // oniViolet
		Blue:        "#7E9CD8", // crystalBlue
		Red:         "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind slate/sky
	return Theme{
		Name:        "Slate",
		Background:  "#020617", // slate-950
		Surface:     "#0f172a", // slate-900
		SelectionBg: "#0284c7", // sky-600
		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		Text:        "#f1f5f9", // slate-100
		Muted:       "#94a3b8", // slate-400
		Faint:       "#64748b", // slate-500
		Cyan:        "#06b6d4", // cyan-500
		Green:       "#22c55e", // green-500
		Yellow:      "#f59e0b", // amber-500
		Magenta:     "#d946ef", // fuchsia-500
		Blue:        "#38bdf8", // sky-400
		Red:         "#ef4444", // red-500
	}
}
