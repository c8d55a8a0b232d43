// Package ui provides the terminal interface for ratlog.
//
// The interface is a single Bubble Tea model with three stacked regions:
//
//   - Filter box: case-insensitive substring filter, applied on every keystroke
//   - Log list: the retained lines that match, each with its absolute line number
//   - Status and hint bars: counts, live state, memory use and key hints
//
// Help and settings are modal overlays drawn over the whole screen. Any key
// closes help; settings cycle the colour knobs from prefs and save them
// immediately.
//
// # Live mode
//
// A tick fires every PollTick. When live mode is on the model polls the
// session, appends new lines and moves the selection to the newest match.
// FileChangedMsg triggers the same poll without waiting for the next tick,
// for callers that watch the file themselves.
//
// Poll errors are logged at debug level and otherwise ignored. The session
// keeps its cursor, so the next tick retries from the same place.
//
// # Usage
//
//	p := ui.NewProgram(ctx, ui.Options{
//		Session:  session,
//		Logger:   logger.Logger,
//		Prefs:    userPrefs,
//		PollTick: cfg.PollInterval,
//		Follow:   true,
//	})
//	if err := ui.Run(ctx, p); err != nil {
//		return err
//	}
package ui
