// Package tetris implements the falling-block game engine: piece catalog,
// collision detection, movement and rotation with a minimal wall kick,
// board merging, line clearing, scoring, and the gravity loop.
//
// The engine is single-threaded. Every operation runs to completion on the
// caller's goroutine; the host delivers gravity ticks and player commands on
// one execution context and pulls a Snapshot afterwards.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ

	kindCount
)

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

type pieceDef struct {
	shape Shape
	color core.Color
}

// catalog holds the spawn orientation and color of every kind.
// Shapes here are shared; callers always get copies.
var catalog = [kindCount]pieceDef{
	KindI: {
		shape: Shape{
			{true, true, true, true},
		},
		color: core.ColorCyan,
	},
	KindO: {
		shape: Shape{
			{true, true},
			{true, true},
		},
		color: core.ColorYellow,
	},
	KindT: {
		shape: Shape{
			{false, true, false},
			{true, true, true},
		},
		color: core.ColorPurple,
	},
	KindL: {
		shape: Shape{
			{false, false, true},
			{true, true, true},
		},
		color: core.ColorOrange,
	},
	KindJ: {
		shape: Shape{
			{true, false, false},
			{true, true, true},
		},
		color: core.ColorBlue,
	},
	KindS: {
		shape: Shape{
			{false, true, true},
			{true, true, false},
		},
		color: core.ColorGreen,
	},
	KindZ: {
		shape: Shape{
			{true, true, false},
			{false, true, true},
		},
		color: core.ColorRed,
	},
}

// Kinds returns every piece kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// CanonicalShape returns a fresh copy of the spawn orientation of k.
func CanonicalShape(k Kind) Shape {
	return catalog[k].shape.Clone()
}

// ColorOf returns the color cells of kind k are drawn and settled with.
func ColorOf(k Kind) core.Color {
	return catalog[k].color
}
