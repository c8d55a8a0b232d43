package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Settings   key.Binding

	// Log list
	FocusFilter key.Binding
	ToggleLive  key.Binding
	Copy        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding

	// Filter input
	ApplyFilter key.Binding
	ClearFilter key.Binding

	// Settings panel
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("S", "Settings"),
		),

		FocusFilter: key.NewBinding(
			key.WithKeys("/", "tab", "ctrl+f"),
			key.WithHelp("/", "Filter"),
		),
		ToggleLive: key.NewBinding(
			key.WithKeys("l", "L", "f", "F"),
			key.WithHelp("L", "Toggle live"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy line"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Up 10"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Down 10"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		ApplyFilter: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "Back to list"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear filter"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Previous value"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "Next value"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Cycle / back"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusFilter, k.ToggleLive, k.Settings, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.FocusFilter, k.ApplyFilter, k.ClearFilter},
		{k.ToggleLive, k.Copy},
		{k.Settings, k.CycleTheme, k.Help, k.Quit},
	}
}
