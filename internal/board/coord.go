package board

import "fmt"

// Coord is a grid point. Unlike Square it may lie off the board, which lets
// ray walks use an off-board sentinel as their end point.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// OnBoard returns true if the point is inside the 8x8 grid.
func (c Coord) OnBoard() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Add steps the point by a direction.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Square converts an on-board point to its square. It panics off the board.
func (c Coord) Square() Square {
	return NewSquare(c.X, c.Y)
}

func (c Coord) String() string {
	if c.OnBoard() {
		return c.Square().String()
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a step vector. Ray directions keep both components in {-1,0,1};
// leaper offsets such as the knight's may be larger.
type Direction struct {
	DX, DY int
}

// Unit directions. North is toward increasing y (rank 8).
var (
	North     = Direction{0, 1}
	South     = Direction{0, -1}
	East      = Direction{1, 0}
	West      = Direction{-1, 0}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{-1, 1}
	SouthEast = Direction{1, -1}
	SouthWest = Direction{-1, -1}
)

// KingSteps are the eight unit vectors.
var KingSteps = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// KnightJumps are the (±1,±2) and (±2,±1) offsets.
var KnightJumps = [8]Direction{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// IsZero returns true for the (0,0) vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}
