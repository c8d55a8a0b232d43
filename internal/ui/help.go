package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	look := m.theme.Look(m.prefs)

	sections := []helpSection{
		{
			title: "Log list",
			items: []helpItem{
				{"j/k ↑/↓", "Move selection"},
				{"PgUp/PgDn", "Move by 10"},
				{"g/Home", "First line"},
				{"G/End", "Last line"},
				{"y", "Copy selected line"},
			},
		},
		{
			title: "Filter",
			items: []helpItem{
				{"/ Tab ^F", "Focus filter"},
				{"Enter/Tab", "Back to list"},
				{"Esc", "Clear, or quit if empty"},
				{"^A/^E", "Start/end of input"},
			},
		},
		{
			title: "Live",
			items: []helpItem{
				{"L/F", "Toggle live tail"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"S", "Settings"},
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/Esc/^C", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	keyStyle := look.Accent.Width(12)
	for i, section := range sections {
		b.WriteString(look.Accent.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(look.AccentColor).
		Padding(1, 2).
		Width(44).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
