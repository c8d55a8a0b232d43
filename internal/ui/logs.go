package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	selectedMarker = " ▸ "
	plainMarker    = "   "
)

var levelRe = regexp.MustCompile(`\b(TRACE|DEBUG|INFO|WARN|WARNING|ERROR|FATAL)\b`)

// handleListKey processes keyboard input while the log list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.showSettings = true
		m.settingsRow = 0
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.FocusFilter):
		m.focus = FocusFilter
		cmd := m.filter.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleLive):
		m.toggleLive()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-PageStep)
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(PageStep)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(len(m.view)-1, 0)
	default:
		return m, nil
	}

	m.syncList()
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if len(m.view) == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.view)-1)
}

// resize fits the list viewport between the filter box and the bars.
func (m *Model) resize() {
	m.list.Width = max(m.width-2, 1)
	m.list.Height = max(m.listBoxHeight()-2, 1)
	m.syncList()
}

func (m Model) listBoxHeight() int {
	return max(m.height-filterBoxHeight-statusBarHeight-hintBarHeight, 3)
}

// syncList re-renders the rows and scrolls so the selection is visible.
func (m *Model) syncList() {
	if !m.ready {
		return
	}
	m.list.SetContent(m.renderRows())

	switch {
	case m.selected < m.list.YOffset:
		m.list.SetYOffset(m.selected)
	case m.selected >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(m.selected - m.list.Height + 1)
	}
}

// renderRows renders every entry of the filtered view.
func (m Model) renderRows() string {
	styles := m.theme.Styles()
	look := m.theme.Look(m.prefs)
	width := m.list.Width

	if len(m.view) == 0 {
		msg := "No log lines"
		if q := strings.TrimSpace(m.filter.Value()); q != "" {
			msg = fmt.Sprintf("No lines match %q", q)
		}
		return styles.MutedText.Render(truncate(msg, width))
	}

	buf := m.session.Buffer()
	textWidth := max(width-rowPrefixWidth, 1)
	rows := make([]string, len(m.view))
	for i, match := range m.view {
		number := fmt.Sprintf("%*d │ ", lineNumberWidth, buf.LineNumber(match.Index))
		text := truncate(sanitizeLine(match.Text), textWidth)

		if i == m.selected {
			rows[i] = look.Highlight.Render(padRight(selectedMarker+number+text, width))
			continue
		}
		rows[i] = plainMarker + styles.FaintText.Render(number) + m.colorizeLine(text, look.LogText, styles)
	}
	return strings.Join(rows, "\n")
}

// colorizeLine renders text in the log style with its level word coloured.
func (m Model) colorizeLine(text string, base lipgloss.Style, styles Styles) string {
	loc := levelRe.FindStringIndex(text)
	if loc == nil {
		return base.Render(text)
	}
	level := text[loc[0]:loc[1]]
	return base.Render(text[:loc[0]]) +
		getLevelStyle(level, styles).Bold(true).Render(level) +
		base.Render(text[loc[1]:])
}

// getLevelStyle returns the style for a log level.
func getLevelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN", "WARNING":
		return styles.WarningText
	case "ERROR", "FATAL":
		return styles.DangerText
	case "DEBUG", "TRACE":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// renderList renders the bordered log list.
func (m Model) renderList() string {
	return m.renderBox("Logs", m.list.View(), m.width, m.listBoxHeight(), m.focus == FocusList)
}

// renderBox draws a rounded border with a title in the top edge.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	look := m.theme.Look(m.prefs)
	color := look.BorderColor
	if focused {
		color = look.AccentColor
	}
	border := lipgloss.NewStyle().Foreground(color)
	inner := max(width-2, 0)
	innerHeight := max(height-2, 0)

	label := " " + title + " "
	fill := inner - 1 - lipgloss.Width(label)
	if fill < 0 {
		label, fill = "", max(inner-1, 0)
	}
	labelStyle := border
	if focused {
		labelStyle = look.Accent.Bold(true)
	}
	top := border.Render("╭─") + labelStyle.Render(label) + border.Render(strings.Repeat("─", fill)+"╮")

	lines := strings.Split(content, "\n")
	side := border.Render("│")
	var b strings.Builder
	b.WriteString(top)
	for i := range innerHeight {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString("\n")
		b.WriteString(side + padRight(truncate(line, inner), inner) + side)
	}
	b.WriteString("\n")
	b.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}
