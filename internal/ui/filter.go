package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleFilterKey processes keyboard input while the filter box has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ClearFilter):
		if m.filter.Value() == "" {
			return m, tea.Quit
		}
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.ApplyFilter):
		m.focus = FocusList
		m.filter.Blur()
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *Model) applyFilter() {
	m.refreshView()
	m.syncList()
}

// renderFilter renders the bordered filter input.
func (m Model) renderFilter() string {
	title := ternary(m.focus == FocusFilter, "Filter (focus)", "Filter")
	return m.renderBox(title, m.filter.View(), m.width, filterBoxHeight, m.focus == FocusFilter)
}
