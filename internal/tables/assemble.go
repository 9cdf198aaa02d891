package tables

import (
	"errors"
	"fmt"

	"github.com/hailam/bbtables/internal/board"
)

// ErrShape is returned when a table does not hold exactly 64 entries per level.
var ErrShape = errors.New("tables: malformed table shape")

// Table is a sequence of 64 masks indexed by square.
type Table []board.Bitboard

// Table2D is a 64x64 matrix of masks indexed by [origin][target].
type Table2D []Table

// Build applies fn to every square, y outer and x inner, so that the position
// of each result equals x + y*8.
func Build(fn func(x, y int) board.Bitboard) Table {
	t := make(Table, 0, board.NumSquares)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			t = append(t, fn(x, y))
		}
	}
	return t
}

// Build2D applies fn to every (origin, target) pair in the same traversal
// order as Build. A row that does not hold 64 entries is a generator defect
// and panics.
func Build2D(fn func(a, b board.Square) board.Bitboard) Table2D {
	t := make(Table2D, 0, board.NumSquares)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			a := board.NewSquare(x, y)
			row := Build(func(bx, by int) board.Bitboard {
				return fn(a, board.NewSquare(bx, by))
			})
			if len(row) != board.NumSquares {
				panic(fmt.Sprintf("tables: row %s has %d entries", a, len(row)))
			}
			t = append(t, row)
		}
	}
	return t
}

// Validate checks that the table holds exactly 64 entries.
func (t Table) Validate() error {
	if len(t) != board.NumSquares {
		return fmt.Errorf("%w: %d entries, want %d", ErrShape, len(t), board.NumSquares)
	}
	return nil
}

// Validate checks that the matrix is 64x64.
func (t Table2D) Validate() error {
	if len(t) != board.NumSquares {
		return fmt.Errorf("%w: %d rows, want %d", ErrShape, len(t), board.NumSquares)
	}
	for i, row := range t {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("row %s: %w", board.Square(i), err)
		}
	}
	return nil
}

// At returns the mask for a square.
func (t Table) At(sq board.Square) board.Bitboard {
	return t[sq]
}

// At returns the mask for an (origin, target) pair.
func (t Table2D) At(a, b board.Square) board.Bitboard {
	return t[a][b]
}
