package board

// Color represents the side a pawn belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Forward returns the rank step of a pawn of this color. White pawns advance
// toward decreasing y in the engine's layout, black pawns toward increasing y.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
