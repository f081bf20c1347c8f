// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and score screens.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TickMsg carries one gravity tick of a game into the Update loop.
type TickMsg struct {
	Time       time.Time
	game       *tetris.Game
	generation uint64
}

// waitForTick returns a command that blocks until g's ticker fires and
// delivers it as a TickMsg, so gravity runs on the same goroutine as key
// handling. The tick is stamped with the game generation current when the
// command was created. The command returns nil once ctx is done.
func waitForTick(ctx context.Context, g *tetris.Game) tea.Cmd {
	ticks := g.Ticks()
	gen := g.Generation()
	return func() tea.Msg {
		select {
		case t := <-ticks:
			return TickMsg{Time: t, game: g, generation: gen}
		case <-ctx.Done():
			return nil
		}
	}
}
