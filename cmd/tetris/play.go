package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately.

Controls (default keys):
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/J     - Soft drop
  Up/W/K       - Rotate
  Space        - Hard drop
  P            - Pause / resume
  Enter        - Start
  R            - Restart
  ?            - All keys
  Q/Ctrl+C     - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := terminalSize()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(newEnv(store), runtimeConfig(width, height))
}

// terminalSize returns the size of stdout, or the default screen size
// when unknown.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the scores database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

func newEnv(store *storage.Store) tui.Env {
	return tui.Env{
		Store:  store,
		Keys:   appConfig.Keys,
		Logger: logger,
	}
}
