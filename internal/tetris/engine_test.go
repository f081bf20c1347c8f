package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestInitSpawnsCurrentAndNext(t *testing.T) {
	e, s := newTestEngine(KindT, KindO)
	assert.Nil(t, s.Current)
	assert.False(t, e.Move(1, 0), "no piece before the first spawn")

	e.Init()
	require.NotNil(t, s.Current)
	require.NotNil(t, s.Next)
	assert.Equal(t, KindT, s.Current.Kind)
	assert.Equal(t, KindO, s.Next.Kind)
}

func TestHardDropOnEmptyBoard(t *testing.T) {
	e, s := newTestEngine(KindI)
	e.Init()
	require.Equal(t, 3, s.Current.X)

	assert.Equal(t, Rows-1, e.HardDrop())

	for x := range Cols {
		assert.Equal(t, x >= 3 && x <= 6, s.Board.Occupied(x, Rows-1), "column %d", x)
	}
	assert.Equal(t, 4, rowCount(s.Board, Rows-1))
	assert.Zero(t, s.Score.Score())
	assert.Zero(t, s.Score.Lines())
	assert.False(t, s.GameOver)
	assert.Zero(t, s.Current.Y, "next piece promoted to spawn")
}

func TestHardDropClearsRow(t *testing.T) {
	e, s := newTestEngine(KindI)
	e.Init()
	fillRow(s.Board, Rows-1, 3, 4, 5, 6)
	s.Board.Set(0, Rows-2, core.ColorRed)

	e.HardDrop()

	assert.Equal(t, 100, s.Score.Score())
	assert.Equal(t, 1, s.Score.Lines())
	assert.Equal(t, 1, rowCount(s.Board, Rows-1))
	assert.Equal(t, core.ColorRed, s.Board.At(0, Rows-1))
}

func TestTetrisScoresEightHundred(t *testing.T) {
	e, s := newTestEngine(KindI)
	e.Init()
	for y := Rows - 4; y < Rows; y++ {
		fillRow(s.Board, y, 0)
	}
	s.Current.Shape = s.Current.Shape.Rotate()
	s.Current.X = 0

	e.HardDrop()

	assert.Equal(t, 800, s.Score.Score())
	assert.Equal(t, 4, s.Score.Lines())
	for y := range Rows {
		assert.Zero(t, rowCount(s.Board, y), "row %d", y)
	}
}

func TestStackingToTopEndsGame(t *testing.T) {
	e, s := newTestEngine(KindI)
	overs := 0
	e.onGameOver = func() { overs++ }
	e.Init()

	drops := 0
	for !s.GameOver && drops < 2*Rows {
		e.HardDrop()
		drops++
	}

	require.True(t, s.GameOver)
	assert.Equal(t, Rows, drops)
	assert.Equal(t, 1, overs)

	before := s.Board.Cells()
	assert.False(t, e.Move(0, 1))
	assert.False(t, e.Move(-1, 0))
	assert.False(t, e.Rotate())
	assert.Zero(t, e.HardDrop())
	assert.Equal(t, before, s.Board.Cells(), "board must not change after game over")
	assert.Equal(t, 1, overs)
}

func TestMergeAboveTopEndsGameWithoutWriting(t *testing.T) {
	e, s := newTestEngine(KindI)
	overs := 0
	e.onGameOver = func() { overs++ }
	e.Init()

	s.Board.Set(0, 2, core.ColorGray)
	s.Current = &Piece{Kind: KindI, Shape: CanonicalShape(KindI).Rotate(), Color: core.ColorCyan, X: 0, Y: -2}

	assert.False(t, e.Move(0, 1))
	assert.True(t, s.GameOver)
	assert.Equal(t, 1, overs)
	assert.False(t, s.Board.Occupied(0, 0))
	assert.False(t, s.Board.Occupied(0, 1))
	assert.Zero(t, s.Score.Score())
}

func TestSidewaysCollisionDoesNotLock(t *testing.T) {
	e, s := newTestEngine(KindO)
	e.Init()
	s.Current.X = 0

	assert.False(t, e.Move(-1, 0))
	assert.Equal(t, 0, s.Current.X)
	for y := range Rows {
		assert.Zero(t, rowCount(s.Board, y))
	}
}

func TestMoveRejectedWhilePaused(t *testing.T) {
	e, s := newTestEngine(KindT)
	e.Init()
	s.Paused = true
	x, y := s.Current.X, s.Current.Y

	assert.False(t, e.Move(1, 0))
	assert.False(t, e.Move(0, 1))
	assert.False(t, e.Rotate())
	assert.Zero(t, e.HardDrop())
	assert.Equal(t, x, s.Current.X)
	assert.Equal(t, y, s.Current.Y)
}

func TestRotateInPlace(t *testing.T) {
	e, s := newTestEngine(KindT)
	e.Init()
	s.Current.Y = 5

	require.True(t, e.Rotate())
	assert.Equal(t, 4, s.Current.X)
	assert.Equal(t, CanonicalShape(KindT).Rotate(), s.Current.Shape)
}

func TestRotateKicksLeftAtRightWall(t *testing.T) {
	e, s := newTestEngine(KindT)
	e.Init()
	s.Current.Shape = CanonicalShape(KindT).Rotate()
	s.Current.X = Cols - 2
	s.Current.Y = 5

	require.True(t, e.Rotate())
	assert.Equal(t, Cols-3, s.Current.X)
	assert.Equal(t, 3, s.Current.Shape.Width())
}

func TestRotatePrefersLeftKick(t *testing.T) {
	e, s := newTestEngine(KindT)
	e.Init()
	s.Current.Shape = CanonicalShape(KindT).Rotate()
	s.Current.X = 4
	s.Current.Y = 5
	// Blocks the in-place and right-kick placements only.
	s.Board.Set(6, 5, core.ColorGray)

	require.True(t, e.Rotate())
	assert.Equal(t, 3, s.Current.X)
}

func TestRotateKicksRightWhenLeftBlocked(t *testing.T) {
	e, s := newTestEngine(KindT)
	e.Init()
	s.Current.Shape = CanonicalShape(KindT).Rotate()
	s.Current.X = 4
	s.Current.Y = 5
	// A settled cell at the piece's own top-left blocks both the in-place
	// and the left-kick placements.
	s.Board.Set(4, 5, core.ColorGray)

	require.True(t, e.Rotate())
	assert.Equal(t, 5, s.Current.X)
}

func TestRotateRejectedLeavesPieceUnchanged(t *testing.T) {
	e, s := newTestEngine(KindI)
	e.Init()
	vertical := CanonicalShape(KindI).Rotate()
	s.Current.Shape = vertical
	s.Current.X = Cols - 1
	s.Current.Y = 5

	assert.False(t, e.Rotate())
	assert.Equal(t, Cols-1, s.Current.X)
	assert.Equal(t, 5, s.Current.Y)
	assert.Equal(t, vertical, s.Current.Shape)
}
