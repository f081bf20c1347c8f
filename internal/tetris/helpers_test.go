package tetris

// sequence is a Randomizer that yields a fixed cycle of kinds.
type sequence struct {
	kinds []Kind
	i     int
}

func (s *sequence) Intn(n int) int {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return int(k) % n
}

func newTestEngine(kinds ...Kind) (*Engine, *State) {
	state := &State{Board: NewBoard(Rows, Cols)}
	e := NewEngine(state, NewFactory(&sequence{kinds: kinds}, Cols))
	return e, state
}

func rowCount(b *Board, y int) int {
	n := 0
	for x := range b.Cols() {
		if b.Occupied(x, y) {
			n++
		}
	}
	return n
}

func fillRow(b *Board, y int, skip ...int) {
	for x := range b.Cols() {
		filled := true
		for _, s := range skip {
			if s == x {
				filled = false
			}
		}
		if filled {
			b.Set(x, y, 1)
		}
	}
}
