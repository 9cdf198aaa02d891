package tables

import "github.com/hailam/bbtables/internal/board"

// FileMask returns every square on the file of (x, y).
func FileMask(x, y int) board.Bitboard {
	mustOnBoard(x, y)
	return Segment(board.C(x, 0), board.North, board.C(x, board.Size), IncludeStart)
}

// RankMask returns every square on the rank of (x, y).
func RankMask(x, y int) board.Bitboard {
	mustOnBoard(x, y)
	return Segment(board.C(0, y), board.East, board.C(board.Size, y), IncludeStart)
}

// DiagonalMask returns the a1-h8 oriented diagonal through (x, y).
func DiagonalMask(x, y int) board.Bitboard {
	mustOnBoard(x, y)
	var start board.Coord
	if y > x {
		start = board.C(0, y-x)
	} else {
		start = board.C(x-y, 0)
	}
	k := board.Size - 1 - max(start.X, start.Y)
	end := board.C(start.X+k, start.Y+k)
	return Segment(start, board.NorthEast, end, Inclusive)
}

// AntiDiagonalMask returns the a8-h1 oriented diagonal through (x, y).
func AntiDiagonalMask(x, y int) board.Bitboard {
	mustOnBoard(x, y)
	var start board.Coord
	if x+y < board.Size {
		start = board.C(0, x+y)
	} else {
		start = board.C(x+y-(board.Size-1), board.Size-1)
	}
	k := min(board.Size-1-start.X, start.Y)
	end := board.C(start.X+k, start.Y-k)
	return Segment(start, board.SouthEast, end, Inclusive)
}

// mustOnBoard panics when (x, y) is not a square. The builders clamp their
// walks to the board, so an unchecked origin would come back as some other
// square's mask.
func mustOnBoard(x, y int) {
	board.NewSquare(x, y)
}
