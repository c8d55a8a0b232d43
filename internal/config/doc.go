// Package config loads ratlog's runtime settings from a TOML file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ratlog/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Fields that are missing or empty keep their defaults
//
// # TOML Format
//
//	poll_ms = 400              # live poll interval, minimum 50
//	follow = false             # start in live mode
//	watch = true               # wake the poller on fsnotify events
//	keep_blank_lines = false   # keep empty lines while following
//	log_file = "~/.local/state/ratlog/ratlog.log"   # "-" or "off" disables
//	log_level = "info"         # debug, info, warn, error
//
// Tilde expansion is applied to the config path and log_file.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and an
// unknown log_level are.
package config
