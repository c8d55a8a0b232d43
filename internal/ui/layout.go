package ui

import "time"

// Fixed rows around the log list.
const (
	filterBoxHeight = 3
	statusBarHeight = 1
	hintBarHeight   = 1
)

// Log list geometry.
const (
	// lineNumberWidth matches "%6d", enough for files under a million lines
	// before the column starts to push text right.
	lineNumberWidth = 6

	// rowPrefixWidth is the selection marker plus the " │ " separator.
	rowPrefixWidth = 3 + lineNumberWidth + 3

	// PageStep is how far PgUp/PgDn move the selection.
	PageStep = 10
)

// Timing and input limits.
const (
	// DefaultPollTick is the live poll interval when none is configured.
	DefaultPollTick = 400 * time.Millisecond

	// FilterCharLimit caps the filter query length.
	FilterCharLimit = 256
)
