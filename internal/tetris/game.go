package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithTicker sets the gravity timer source.
func WithTicker(t Ticker) Option {
	return func(g *Game) { g.ticker = t }
}

// WithInterval sets the gravity period.
func WithInterval(d time.Duration) Option {
	return func(g *Game) { g.interval = d }
}

// WithRandomizer sets the piece selection source.
func WithRandomizer(r Randomizer) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed selects pieces from a deterministic sequence. A zero seed is
// treated as unset.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed != 0 {
			g.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the logger for lifecycle and lock events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithGameOverHook registers fn to run once per game with the final score
// and line count.
func WithGameOverHook(fn func(score, lines int)) Option {
	return func(g *Game) { g.onGameOver = fn }
}

// WithKeyHints sets the key names shown in the pause, start and game-over
// overlays.
func WithKeyHints(h KeyHints) Option {
	return func(g *Game) { g.hints = h }
}

// Game binds the engine to the gravity scheduler and exposes the commands
// a host dispatches to it. All methods must be called from one goroutine.
type Game struct {
	state     *State
	engine    *Engine
	scheduler *Scheduler

	ticker     Ticker
	interval   time.Duration
	rng        Randomizer
	logger     *log.Logger
	hints      KeyHints
	onGameOver func(score, lines int)

	// generation counts initialised games; ticks taken from the ticker
	// before a reset belong to an older generation.
	generation uint64
}

// New creates a stopped game. No piece exists until Start.
func New(opts ...Option) *Game {
	g := &Game{interval: DefaultInterval}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.ticker == nil {
		g.ticker = NewTicker()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.state = &State{Board: NewBoard(Rows, Cols)}
	g.engine = NewEngine(g.state, NewFactory(g.rng, Cols))
	g.engine.onLock = g.pieceLocked
	g.engine.onGameOver = g.gameOver
	g.scheduler = NewScheduler(g.ticker, g.interval)
	return g
}

// Start begins play. From stopped it spawns the first pieces and runs the
// loop; from paused it resumes; after game over it starts a fresh game.
// Starting a running game does nothing.
func (g *Game) Start() bool {
	switch {
	case g.state.GameOver:
		g.Reset()
		return true
	case g.scheduler.State() == LoopPaused:
		return g.resume()
	case g.scheduler.State() == LoopStopped:
		if g.state.Current == nil {
			g.init()
		}
		g.scheduler.Start()
		g.logger.Info("game started", "interval", g.scheduler.Interval())
		return true
	}
	return false
}

// TogglePause flips between running and paused. Ignored after game over
// and before the first Start.
func (g *Game) TogglePause() bool {
	if g.state.GameOver || g.state.Current == nil {
		return false
	}
	if g.state.Paused {
		return g.resume()
	}
	return g.pause()
}

// Pause suspends gravity and player movement. Unlike TogglePause it never
// resumes, so hosts can call it on events such as a lost terminal focus.
func (g *Game) Pause() bool {
	if g.state.GameOver || g.state.Paused || g.state.Current == nil {
		return false
	}
	return g.pause()
}

// Resume continues a paused game. It is meant for hosts that drive the
// game directly; key input resumes through TogglePause or Start.
func (g *Game) Resume() bool {
	if g.state.GameOver || !g.state.Paused {
		return false
	}
	return g.resume()
}

func (g *Game) pause() bool {
	g.state.Paused = true
	g.scheduler.Pause()
	g.logger.Debug("game paused")
	return true
}

func (g *Game) resume() bool {
	g.state.Paused = false
	g.scheduler.Resume()
	g.logger.Debug("game resumed")
	return true
}

// Reset abandons the current game and starts a new one.
func (g *Game) Reset() {
	g.scheduler.Stop()
	g.init()
	g.scheduler.Start()
	g.logger.Info("game reset")
}

func (g *Game) init() {
	g.engine.Init()
	g.generation++
}

// Generation identifies the current game. It changes every time a fresh
// game is initialised, so a host can discard ticks it took from Ticks
// before a reset.
func (g *Game) Generation() uint64 {
	return g.generation
}

// MoveLeft shifts the current piece one column left.
func (g *Game) MoveLeft() bool { return g.engine.Move(-1, 0) }

// MoveRight shifts the current piece one column right.
func (g *Game) MoveRight() bool { return g.engine.Move(1, 0) }

// SoftDrop moves the current piece one row down, locking it if blocked.
func (g *Game) SoftDrop() bool { return g.engine.Move(0, 1) }

// Rotate turns the current piece clockwise.
func (g *Game) Rotate() bool { return g.engine.Rotate() }

// HardDrop drops the current piece to its resting row and locks it.
func (g *Game) HardDrop() bool {
	if !g.engine.active() {
		return false
	}
	g.engine.HardDrop()
	return true
}

// Tick applies one gravity step. Hosts call it for every value received
// from Ticks.
func (g *Game) Tick() bool {
	return g.engine.Move(0, 1)
}

// Ticks returns the gravity channel.
func (g *Game) Ticks() <-chan time.Time {
	return g.scheduler.C()
}

// Handle dispatches a player action. After game over only Start and
// Restart are honoured. Reports whether the game changed.
func (g *Game) Handle(a core.Action) bool {
	if g.state.GameOver && a != core.ActionStart && a != core.ActionRestart {
		return false
	}
	switch a {
	case core.ActionLeft:
		return g.MoveLeft()
	case core.ActionRight:
		return g.MoveRight()
	case core.ActionSoftDrop:
		return g.SoftDrop()
	case core.ActionRotate:
		return g.Rotate()
	case core.ActionHardDrop:
		return g.HardDrop()
	case core.ActionPause:
		return g.TogglePause()
	case core.ActionStart:
		return g.Start()
	case core.ActionRestart:
		g.Reset()
		return true
	}
	return false
}

// Score returns the accumulated points.
func (g *Game) Score() int { return g.state.Score.Score() }

// Lines returns the total rows cleared.
func (g *Game) Lines() int { return g.state.Score.Lines() }

// IsPaused reports whether the game is paused.
func (g *Game) IsPaused() bool { return g.state.Paused }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.state.GameOver }

// Loop returns the gravity loop state.
func (g *Game) Loop() LoopState { return g.scheduler.State() }

// Close stops the gravity loop.
func (g *Game) Close() {
	g.scheduler.Stop()
}

func (g *Game) pieceLocked(p *Piece, cleared int) {
	g.logger.Debug("piece locked", "kind", p.Kind, "x", p.X, "y", p.Y, "cleared", cleared)
	if cleared > 0 {
		g.logger.Debug("rows cleared", "rows", cleared, "score", g.Score(), "lines", g.Lines())
	}
}

func (g *Game) gameOver() {
	g.scheduler.Stop()
	g.logger.Info("game over", "score", g.Score(), "lines", g.Lines())
	if g.onGameOver != nil {
		g.onGameOver(g.Score(), g.Lines())
	}
}
