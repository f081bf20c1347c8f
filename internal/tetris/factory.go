package tetris

// Randomizer picks piece kinds. *math/rand.Rand satisfies it; tests inject
// a fixed sequence.
type Randomizer interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Factory creates freshly spawned pieces for a board of a given width.
type Factory struct {
	rng  Randomizer
	cols int
}

// NewFactory creates a factory spawning pieces centred on a board cols wide.
func NewFactory(rng Randomizer, cols int) *Factory {
	return &Factory{rng: rng, cols: cols}
}

// Create returns a uniformly random piece at its spawn position.
func (f *Factory) Create() *Piece {
	return f.CreateKind(Kind(f.rng.Intn(int(kindCount))))
}

// CreateKind returns a piece of kind k at its spawn position: top row,
// horizontally centred as floor(cols/2) - floor(width/2).
func (f *Factory) CreateKind(k Kind) *Piece {
	shape := CanonicalShape(k)
	return &Piece{
		Kind:  k,
		Shape: shape,
		Color: ColorOf(k),
		X:     f.cols/2 - shape.Width()/2,
		Y:     0,
	}
}
