package tetris

// Collides reports whether p, displaced by (dx, dy) and drawn with shape,
// would leave the well or overlap a settled cell. A nil shape means the
// piece's own shape.
//
// Cells above row 0 are legal: they only collide with the side walls.
func Collides(b *Board, p *Piece, dx, dy int, shape Shape) bool {
	if shape == nil {
		shape = p.Shape
	}
	for x, y := range shape.Cells() {
		bx := p.X + x + dx
		by := p.Y + y + dy
		if bx < 0 || bx >= b.cols || by >= b.rows {
			return true
		}
		if by >= 0 && b.cells[by][bx] != Empty {
			return true
		}
	}
	return false
}
