// Package board implements the 8x8 bitboard model shared by every table.
package board

import "fmt"

// Square represents a square on the board (0-63).
// The mapping is index = x + y*8 with x the file and y the rank: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// Size is the side length of the board.
const Size = 8

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// NewSquare creates a square from x (file) and y (rank), both 0-indexed.
// It panics if either coordinate is outside [0,7].
func NewSquare(x, y int) Square {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		panic(fmt.Sprintf("board: coordinate (%d,%d) is off the board", x, y))
	}
	return Square(x + y*Size)
}

// File returns the x coordinate of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the y coordinate of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Coord returns the grid point of the square.
func (sq Square) Coord() Coord {
	return Coord{X: sq.File(), Y: sq.Rank()}
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	return NewSquare(file, rank), nil
}

// AllSquares returns every square in index order.
func AllSquares() []Square {
	squares := make([]Square, 0, NumSquares)
	for sq := A1; sq <= H8; sq++ {
		squares = append(squares, sq)
	}
	return squares
}
