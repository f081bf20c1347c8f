package tetris

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestGame(t *testing.T, kinds []Kind, opts ...Option) (*Game, *ManualTicker) {
	t.Helper()
	ticker := NewManualTicker()
	opts = append([]Option{WithTicker(ticker), WithRandomizer(&sequence{kinds: kinds})}, opts...)
	g := New(opts...)
	t.Cleanup(g.Close)
	return g, ticker
}

// pump fires the ticker and applies the tick the way a host loop would.
// Reports whether a tick was observed.
func pump(g *Game, ticker *ManualTicker) bool {
	ticker.Fire()
	select {
	case <-g.Ticks():
		g.Tick()
		return true
	default:
		return false
	}
}

func TestNewGameIsStopped(t *testing.T) {
	g, ticker := newTestGame(t, []Kind{KindT})

	assert.Equal(t, LoopStopped, g.Loop())
	assert.False(t, ticker.Running())
	assert.Nil(t, g.Snapshot().Current)
	assert.False(t, g.Handle(core.ActionLeft))
	assert.False(t, g.TogglePause())
	assert.False(t, pump(g, ticker))
}

func TestStartRunsGravity(t *testing.T) {
	g, ticker := newTestGame(t, []Kind{KindT})

	require.True(t, g.Start())
	assert.Equal(t, LoopRunning, g.Loop())
	assert.True(t, ticker.Running())
	assert.Equal(t, DefaultInterval, ticker.Interval())
	assert.False(t, g.Start(), "starting a running game is a no-op")

	require.True(t, pump(g, ticker))
	require.True(t, pump(g, ticker))
	assert.Equal(t, 2, g.Snapshot().Current.Y)
}

func TestWithInterval(t *testing.T) {
	g, ticker := newTestGame(t, []Kind{KindT}, WithInterval(250*time.Millisecond))
	g.Start()
	assert.Equal(t, 250*time.Millisecond, ticker.Interval())
}

func TestPauseStopsTicks(t *testing.T) {
	g, ticker := newTestGame(t, []Kind{KindT})
	g.Start()

	// A tick pending at pause time must be discarded.
	require.True(t, ticker.Fire())
	require.True(t, g.TogglePause())

	assert.Equal(t, LoopPaused, g.Loop())
	assert.True(t, g.IsPaused())
	assert.False(t, ticker.Running())
	assert.False(t, pump(g, ticker))

	x := g.Snapshot().Current.X
	assert.False(t, g.Handle(core.ActionLeft))
	assert.False(t, g.Handle(core.ActionRotate))
	assert.Equal(t, x, g.Snapshot().Current.X)

	require.True(t, g.TogglePause())
	assert.Equal(t, LoopRunning, g.Loop())
	assert.True(t, pump(g, ticker))
	assert.Equal(t, 1, g.Snapshot().Current.Y)
}

func TestStartResumesPausedGame(t *testing.T) {
	g, _ := newTestGame(t, []Kind{KindT})
	g.Start()
	g.Pause()
	assert.False(t, g.Pause())

	require.True(t, g.Handle(core.ActionStart))
	assert.False(t, g.IsPaused())
	assert.Equal(t, LoopRunning, g.Loop())
	assert.False(t, g.Resume())
}

func TestResetStartsFreshGame(t *testing.T) {
	g, ticker := newTestGame(t, []Kind{KindI})
	g.Start()
	g.state.Board.Set(0, Rows-1, core.ColorRed)
	g.state.Score.ApplyClear(2)
	g.Pause()

	require.True(t, g.Handle(core.ActionRestart))

	snap := g.Snapshot()
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Lines)
	assert.False(t, snap.Paused)
	assert.Equal(t, LoopRunning, snap.Loop)
	assert.Equal(t, Empty, snap.Board[Rows-1][0])
	assert.True(t, ticker.Running())
}

func TestGenerationChangesOnEveryNewGame(t *testing.T) {
	g, _ := newTestGame(t, []Kind{KindI})
	assert.Zero(t, g.Generation())

	g.Start()
	first := g.Generation()
	assert.NotZero(t, first)

	g.Pause()
	g.Start()
	assert.Equal(t, first, g.Generation(), "resuming keeps the game")

	g.Reset()
	assert.Greater(t, g.Generation(), first)
}

func TestGameOverStopsLoopAndIgnoresCommands(t *testing.T) {
	var finals []int
	g, ticker := newTestGame(t, []Kind{KindI}, WithGameOverHook(func(score, lines int) {
		finals = append(finals, score)
	}))
	g.Start()

	for i := 0; i < 2*Rows && !g.IsOver(); i++ {
		g.Handle(core.ActionHardDrop)
	}

	require.True(t, g.IsOver())
	assert.Equal(t, []int{0}, finals)
	assert.Equal(t, LoopStopped, g.Loop())
	assert.False(t, ticker.Running())
	assert.False(t, pump(g, ticker))

	before := g.Snapshot()
	for _, a := range []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionSoftDrop,
		core.ActionRotate, core.ActionHardDrop, core.ActionPause,
	} {
		assert.False(t, g.Handle(a), "action %s", a)
	}
	assert.False(t, g.Tick())
	assert.Equal(t, before, g.Snapshot())
	assert.Len(t, finals, 1)

	require.True(t, g.Handle(core.ActionStart))
	assert.False(t, g.IsOver())
	assert.Equal(t, LoopRunning, g.Loop())
	assert.Zero(t, g.Score())
}

func TestGameOverReportsFinalScore(t *testing.T) {
	var gotScore, gotLines int
	g, _ := newTestGame(t, []Kind{KindI}, WithGameOverHook(func(score, lines int) {
		gotScore, gotLines = score, lines
	}))
	g.Start()
	fillRow(g.state.Board, Rows-1, 3, 4, 5, 6)
	g.HardDrop()
	require.Equal(t, 100, g.Score())

	for !g.IsOver() {
		g.HardDrop()
	}
	assert.Equal(t, 100, gotScore)
	assert.Equal(t, 1, gotLines)
}

func TestHandleIgnoresUnknownActions(t *testing.T) {
	g, _ := newTestGame(t, []Kind{KindO})
	g.Start()
	before := g.Snapshot()

	assert.False(t, g.Handle(core.ActionQuit))
	assert.False(t, g.Handle(core.ActionNone))
	assert.False(t, g.Handle(core.Action(200)))
	assert.Equal(t, before, g.Snapshot())
}

func TestHandleDispatch(t *testing.T) {
	g, _ := newTestGame(t, []Kind{KindT})
	g.Start()

	require.True(t, g.Handle(core.ActionLeft))
	assert.Equal(t, 3, g.Snapshot().Current.X)
	require.True(t, g.Handle(core.ActionRight))
	require.True(t, g.Handle(core.ActionRight))
	assert.Equal(t, 5, g.Snapshot().Current.X)
	require.True(t, g.Handle(core.ActionSoftDrop))
	assert.Equal(t, 1, g.Snapshot().Current.Y)
	require.True(t, g.Handle(core.ActionRotate))
	assert.Equal(t, 2, g.Snapshot().Current.Shape.Width())
	require.True(t, g.Handle(core.ActionHardDrop))
	assert.Equal(t, 4, rowCount(g.state.Board, Rows-1)+rowCount(g.state.Board, Rows-2)+rowCount(g.state.Board, Rows-3))
}

func TestSnapshotIsIndependent(t *testing.T) {
	g, _ := newTestGame(t, []Kind{KindL})
	g.Start()

	snap := g.Snapshot()
	snap.Board[Rows-1][0] = core.ColorRed
	snap.Current.Shape[0][0] = true
	snap.Current.X = 0

	fresh := g.Snapshot()
	assert.Equal(t, Empty, fresh.Board[Rows-1][0])
	assert.False(t, fresh.Current.Shape[0][0])
	assert.Equal(t, 4, fresh.Current.X)
}

func TestWithSeedIsDeterministic(t *testing.T) {
	var kinds [2][]Kind
	for i := range kinds {
		g := New(WithTicker(NewManualTicker()), WithSeed(42))
		g.Start()
		for range 10 {
			kinds[i] = append(kinds[i], g.Snapshot().Current.Kind)
			g.HardDrop()
		}
		g.Close()
	}
	assert.Equal(t, kinds[0], kinds[1])
}

func TestGameLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g, _ := newTestGame(t, []Kind{KindO}, WithLogger(logger))

	g.Start()
	g.HardDrop()

	out := buf.String()
	assert.Contains(t, out, "game started")
	assert.Contains(t, out, "piece locked")
}
