// Package app wires configuration, logging, the log session and the UI into
// the ratlog program.
//
// # Startup
//
//  1. Load runtime config from ~/.config/ratlog/config.toml (defaults if missing)
//  2. Open the diagnostic log (never stdout, which belongs to the TUI)
//  3. Load display prefs, degrading to defaults on any error
//  4. Cold-load the tail of the log file, or use the sample lines
//  5. Start the file notifier when watching is enabled
//  6. Run the TUI until the user quits or the context is cancelled
//
// A missing log file is fatal and returned from Run. Everything after startup
// is recoverable: poll failures are logged and retried on the next tick.
//
// # Notifier
//
// StartNotifier uses fsnotify on the file's directory and sends
// ui.FileChangedMsg into the program after a short debounce. It only wakes
// the UI early; polling on the tick continues regardless, so a platform
// without inotify support loses latency but not correctness.
package app
