package tables

import (
	"golang.org/x/exp/constraints"

	"github.com/hailam/bbtables/internal/board"
)

// Colinear reports whether a and b share a file, rank, diagonal or
// anti-diagonal, tested in that order, and returns the unit step from a toward
// b along that line. For a == b the step is zero and ok is true.
func Colinear(a, b board.Square) (board.Direction, bool) {
	ax, ay := a.File(), a.Rank()
	bx, by := b.File(), b.Rank()

	switch {
	case ax == bx, ay == by, ay-ax == by-bx, ax+ay == bx+by:
		return board.Direction{DX: sign(bx - ax), DY: sign(by - ay)}, true
	}
	return board.Direction{}, false
}

// Between returns the squares strictly between a and b, or an empty bitboard
// when they are not colinear.
func Between(a, b board.Square) board.Bitboard {
	dir, ok := Colinear(a, b)
	if !ok {
		return board.Empty
	}
	return Segment(a.Coord(), dir, b.Coord(), Exclusive)
}

// Line returns the full file, rank or diagonal through both a and b, or an
// empty bitboard when they are not colinear or are the same square.
func Line(a, b board.Square) board.Bitboard {
	if a == b {
		return board.Empty
	}
	x, y := a.File(), a.Rank()
	bx, by := b.File(), b.Rank()

	switch {
	case x == bx:
		return FileMask(x, y)
	case y == by:
		return RankMask(x, y)
	case y-x == by-bx:
		return DiagonalMask(x, y)
	case x+y == bx+by:
		return AntiDiagonalMask(x, y)
	}
	return board.Empty
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
