// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Start with the menu
//	tetris play              - Play a game directly
//	tetris menu              - Menu: play, view scores, quit
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//	tetris config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: ~/.tetris/configs/tetris.yaml)
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--gravity <dur>     - Override the drop interval (e.g. 500ms)
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--bind <a=k,k>      - Rebind an action, e.g. hard_drop=x,space
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagGravity  time.Duration
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagBind     []string
)

var (
	appConfig config.Config
	logger    = log.New(io.Discard)
	logCloser = func() {}
)

func main() {
	err := rootCmd.Execute()
	logCloser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris is a terminal take on the falling-block puzzle game.

Available commands:
  play     - Play a game directly
  menu     - Menu with play and high scores (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  tetris
  tetris play --seed 42
  tetris play --gravity 500ms
  tetris play --bind hard_drop=x --bind rotate=up,z
  tetris serve --ssh :2222
  tetris scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.DurationVar(&flagGravity, "gravity", 0, "Drop interval (0 = from configuration)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from configuration)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringArrayVar(&flagBind, "bind", nil, "Rebind an action: action=key[,key...] (repeatable)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies flag overrides and builds the
// logger. Interactive commands must not log to the terminal they draw on.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagGravity > 0 {
		cfg.Gravity.IntervalMS = int(flagGravity / time.Millisecond)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	for _, b := range flagBind {
		name, keys, ok := strings.Cut(b, "=")
		if !ok || keys == "" {
			return fmt.Errorf("invalid --bind %q, want action=key[,key...]", b)
		}
		if err := cfg.Keys.Bind(name, strings.Split(keys, ",")); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	var console io.Writer = io.Discard
	if cmd == serveCmd {
		console = os.Stderr
	}
	l, closer, err := newLogger(cfg.Log, console)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

// newLogger writes to the configured file, or to console when none is set.
func newLogger(cfg config.LogConfig, console io.Writer) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	w, closer := console, func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(config.ExpandPath(cfg.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { _ = f.Close() }
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	return l, closer, nil
}

// runtimeConfig builds the per-game settings for a screen of w x h.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: w,
		ScreenH: h,
		Seed:    flagSeed,
		Gravity: appConfig.Interval(),
	}
}
