package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Well dimensions.
const (
	Rows = 20
	Cols = 10
)

// Empty marks a board cell with no settled block.
const Empty = core.ColorDefault

// Board is the matrix of settled cells. Row 0 is the top of the well.
type Board struct {
	rows, cols int
	cells      [][]core.Color
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols, cells: make([][]core.Color, rows)}
	for y := range b.cells {
		b.cells[y] = make([]core.Color, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (x, y) lies inside the well.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// At returns the cell at (x, y). Out-of-bounds cells read as Empty.
func (b *Board) At(x, y int) core.Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if b.InBounds(x, y) {
		b.cells[y][x] = c
	}
}

// Occupied reports whether (x, y) holds a settled block.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != Empty
}

// Clear empties every cell.
func (b *Board) Clear() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; y-- {
		if !b.RowFull(y) {
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]core.Color, b.cols)
		cleared++
		// The row shifted into y has not been examined yet.
		y++
	}
	return cleared
}

// Cells returns a copy of the cell matrix.
func (b *Board) Cells() [][]core.Color {
	out := make([][]core.Color, b.rows)
	for y, row := range b.cells {
		out[y] = make([]core.Color, b.cols)
		copy(out[y], row)
	}
	return out
}
