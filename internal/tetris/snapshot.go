package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// Snapshot is a point-in-time copy of everything a renderer needs.
// Mutating it does not affect the game.
type Snapshot struct {
	Board    [][]core.Color
	Current  *PieceView
	Next     *PieceView
	Score    int
	Lines    int
	Paused   bool
	GameOver bool
	Loop     LoopState
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Board:    s.Board.Cells(),
		Current:  viewOf(s.Current),
		Next:     viewOf(s.Next),
		Score:    s.Score.Score(),
		Lines:    s.Score.Lines(),
		Paused:   s.Paused,
		GameOver: s.GameOver,
		Loop:     g.scheduler.State(),
	}
}

func viewOf(p *Piece) *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Kind:  p.Kind,
		Shape: p.Shape.Clone(),
		Color: p.Color,
		X:     p.X,
		Y:     p.Y,
	}
}
