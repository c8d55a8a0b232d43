package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/ratlog/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const controlsHelp = `Controls:
  /  Tab  Ctrl+F    focus the filter (Enter/Tab back to the list, Esc clears)
  j/k  Up/Down      move selection
  PgUp/PgDn         move by 10
  g/Home  G/End     first/last line
  L or F            toggle live tail (file only)
  y                 copy selected line
  S                 settings
  T                 cycle theme
  ?                 help
  q  Esc  Ctrl+C    quit`

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(ctx, app.Run)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ratlog: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(ctx context.Context, runApp runFunc) *cobra.Command {
	var (
		configPath string
		prefsPath  string
		pollMillis int
		follow     bool
	)

	cmd := &cobra.Command{
		Use:   "ratlog [flags] [LOG_FILE]",
		Short: "Tail, follow and filter a log file in the terminal",
		Long: `ratlog shows the last lines of a log file, follows it as it grows and
filters the retained lines by substring. Without LOG_FILE it shows sample data.

` + controlsHelp,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				Follow:     follow,
			}
			if len(args) == 1 {
				opts.LogPath = args[0]
			}
			if pollMillis < 0 {
				return fmt.Errorf("invalid --poll %d: must be positive", pollMillis)
			}
			if pollMillis > 0 {
				opts.Poll = time.Duration(pollMillis) * time.Millisecond
			}
			return runApp(ctx, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/ratlog/config.toml)")
	flags.StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/ratlog/prefs.toml)")
	flags.IntVar(&pollMillis, "poll", 0, "live poll interval in milliseconds (default from config, 400)")
	flags.BoolVar(&follow, "follow", false, "start in live mode")
	flags.BoolP("version", "V", false, "print version and exit")

	return cmd
}
