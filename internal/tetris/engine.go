package tetris

// State is the single mutable aggregate of a game in progress.
// Current and Next are nil only before the first spawn.
type State struct {
	Board    *Board
	Current  *Piece
	Next     *Piece
	Score    ScoreTracker
	Paused   bool
	GameOver bool
}

// wallKicks are the horizontal offsets tried, in order, when rotating.
var wallKicks = [...]int{0, -1, 1}

// Engine applies movement, rotation, locking, and line clearing to a State.
type Engine struct {
	state   *State
	factory *Factory

	// onLock runs after a piece is merged and rows are cleared.
	onLock func(p *Piece, cleared int)
	// onGameOver runs once per game, when the terminal state is entered.
	onGameOver func()
}

// NewEngine creates an engine operating on state. The state is not
// initialised until Init is called.
func NewEngine(state *State, factory *Factory) *Engine {
	return &Engine{state: state, factory: factory}
}

// Init clears the board and score, and spawns the current and next pieces.
func (e *Engine) Init() {
	s := e.state
	s.Board.Clear()
	s.Score.Reset()
	s.Paused = false
	s.GameOver = false
	s.Current = e.factory.Create()
	s.Next = e.factory.Create()
}

func (e *Engine) active() bool {
	s := e.state
	return s.Current != nil && !s.Paused && !s.GameOver
}

// Move shifts the current piece by (dx, dy). If the target is blocked and
// the move was downward, the piece locks in place. Reports whether the
// piece moved.
func (e *Engine) Move(dx, dy int) bool {
	if !e.active() {
		return false
	}
	p := e.state.Current
	if !Collides(e.state.Board, p, dx, dy, nil) {
		p.X += dx
		p.Y += dy
		return true
	}
	if dy > 0 {
		e.lock()
	}
	return false
}

// Rotate turns the current piece clockwise, shifting it one column left or
// right if the rotated shape does not fit in place. Reports whether the
// rotation was applied.
func (e *Engine) Rotate() bool {
	if !e.active() {
		return false
	}
	p := e.state.Current
	rotated := p.Shape.Rotate()
	for _, dx := range wallKicks {
		if !Collides(e.state.Board, p, dx, 0, rotated) {
			p.X += dx
			p.Shape = rotated
			return true
		}
	}
	return false
}

// HardDrop moves the current piece down until it locks. Returns the number
// of rows it fell.
func (e *Engine) HardDrop() int {
	if !e.active() {
		return 0
	}
	dropped := 0
	for range e.state.Board.Rows() + 1 {
		if !e.Move(0, 1) {
			break
		}
		dropped++
	}
	return dropped
}

// lock merges the current piece into the board, clears rows, scores them,
// and promotes the next piece.
func (e *Engine) lock() {
	s := e.state
	p := s.Current

	// A piece settling above the well ends the game with nothing written.
	for _, y := range p.Shape.Cells() {
		if p.Y+y < 0 {
			e.end()
			return
		}
	}
	for x, y := range p.Shape.Cells() {
		s.Board.Set(p.X+x, p.Y+y, p.Color)
	}

	cleared := s.Board.ClearLines()
	s.Score.ApplyClear(cleared)
	if e.onLock != nil {
		e.onLock(p, cleared)
	}

	s.Current = s.Next
	s.Next = e.factory.Create()
	if Collides(s.Board, s.Current, 0, 0, nil) {
		e.end()
	}
}

func (e *Engine) end() {
	if e.state.GameOver {
		return
	}
	e.state.GameOver = true
	if e.onGameOver != nil {
		e.onGameOver()
	}
}
