package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ratlog/internal/prefs"
)

// settingsRows lists the knobs in display order; the panel adds a final
// "Back" row after them.
var settingsRows = []struct {
	label   string
	options []string
	field   func(*prefs.Prefs) *string
}{
	{"Accent (focus/highlight)", prefs.Accents, func(p *prefs.Prefs) *string { return &p.Accent }},
	{"Text colour", prefs.TextColors, func(p *prefs.Prefs) *string { return &p.TextColor }},
	{"Text style", prefs.TextStyles, func(p *prefs.Prefs) *string { return &p.TextStyle }},
	{"Border colour", prefs.BorderColors, func(p *prefs.Prefs) *string { return &p.BorderColor }},
	{"Status bar colour", prefs.StatusColors, func(p *prefs.Prefs) *string { return &p.StatusColor }},
}

func settingsRowCount() int { return len(settingsRows) + 1 }

// handleSettingsKey processes keyboard input while the settings panel is open.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	back := m.settingsRow == len(settingsRows)

	switch {
	case key.Matches(msg, m.keys.Close):
		m.showSettings = false
	case key.Matches(msg, m.keys.Up):
		m.settingsRow = max(m.settingsRow-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.settingsRow = min(m.settingsRow+1, settingsRowCount()-1)
	case key.Matches(msg, m.keys.Select) && back:
		m.showSettings = false
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Next):
		m.cycleSetting(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleSetting(-1)
	}
	return m, nil
}

// cycleSetting steps the selected knob and saves the result.
func (m *Model) cycleSetting(delta int) {
	if m.settingsRow >= len(settingsRows) {
		return
	}
	row := settingsRows[m.settingsRow]
	value := row.field(&m.prefs)
	*value = prefs.Cycle(row.options, *value, delta)
	m.savePrefs()
	m.syncList()
}

// renderSettings renders the settings panel centred on screen.
func (m Model) renderSettings() string {
	look := m.theme.Look(m.prefs)
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(look.Accent.Bold(true).Render("Settings"))
	b.WriteString("\n\n")
	for i := range settingsRowCount() {
		var text string
		if i < len(settingsRows) {
			row := settingsRows[i]
			text = fmt.Sprintf("%s: %s  (←/→)", row.label, *row.field(&m.prefs))
		} else {
			text = "Back (Enter or Esc)"
		}
		if i == m.settingsRow {
			b.WriteString(look.Highlight.Render(selectedMarker + text + " "))
		} else {
			b.WriteString(styles.Text.Render(plainMarker + text))
		}
		if i < settingsRowCount()-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Changes are saved to " + m.prefsPath))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(look.AccentColor).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
