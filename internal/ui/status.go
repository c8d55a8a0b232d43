package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/ratlog/internal/logtail"
)

// statusLine formats the counts shown in the status bar.
func statusLine(shown, retained int, live bool, mem uint64, query string) string {
	filter := strings.TrimSpace(query)
	if filter == "" {
		filter = "(none)"
	}
	return fmt.Sprintf(" %s / %s lines%s |  RAM: %s  |  Filter: %q ",
		formatCount(shown),
		formatCount(retained),
		ternary(live, "  LIVE ", " "),
		humanize.IBytes(mem),
		filter,
	)
}

// sourceLabel describes where the lines came from.
func sourceLabel(s *logtail.Session) string {
	if s.Strategy() == logtail.StrategySample {
		return "sample data"
	}
	label := filepath.Base(s.Path())
	if s.Strategy() == logtail.StrategyTailScan {
		label += " (last " + humanize.IBytes(uint64(logtail.TailReadSize)) + ")"
	}
	return label
}

// renderStatus renders the status bar.
func (m Model) renderStatus() string {
	look := m.theme.Look(m.prefs)
	bg := NewBgStyle(m.theme.Surface)
	text := statusLine(len(m.view), m.session.Buffer().Len(), m.live, m.mem, m.filter.Value())

	style := look.Status
	if m.live {
		style = style.Bold(true)
	}
	return bg.FillLine(bg.Render(truncate(text, m.width), style), m.width)
}

// renderHints renders the key hints, the source and any notice.
func (m Model) renderHints() string {
	look := m.theme.Look(m.prefs)
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	h := m.help
	h.Width = m.width
	h.Styles.ShortKey = look.Accent.Background(lipgloss.Color(m.theme.Surface))
	h.Styles.ShortDesc = look.Status
	h.Styles.ShortSeparator = look.Status

	parts := []string{
		bg.Render(" "+sourceLabel(m.session), styles.MutedText),
		h.ShortHelpView(m.keys.ShortHelp()),
	}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.WarningText))
	}
	return bg.FillLine(truncate(bg.Join(parts, "  │  "), m.width), m.width)
}
