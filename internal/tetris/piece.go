package tetris

import (
	"iter"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape is a rectangular occupancy matrix. Row 0 is the top of the
// bounding box; every row has the same length.
type Shape [][]bool

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90° clockwise.
// An R×C shape becomes C×R with rotated[i][j] = s[R-1-j][i].
func (s Shape) Rotate() Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Cells yields the (x, y) offset of every occupied cell, row by row.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y, row := range s {
			for x, filled := range row {
				if filled && !yield(x, y) {
					return
				}
			}
		}
	}
}

// Piece is the falling tetromino. X and Y locate the top-left corner of the
// shape's bounding box on the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}
