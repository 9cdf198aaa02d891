package tables

import "github.com/hailam/bbtables/internal/board"

// KnightMask returns the knight leaps from (x, y) that stay on the board.
func KnightMask(x, y int) board.Bitboard {
	return leaps(board.C(x, y), board.KnightJumps[:])
}

// KingMask returns the king steps from (x, y) that stay on the board.
func KingMask(x, y int) board.Bitboard {
	return leaps(board.C(x, y), board.KingSteps[:])
}

// PawnCaptureMask returns the two forward diagonal captures of a pawn of the
// given color on (x, y).
//
// A pawn on y == 7 gets an empty mask for either color. The engine has always
// consumed the table with that guard in place.
func PawnCaptureMask(x, y int, c board.Color) board.Bitboard {
	mustOnBoard(x, y)
	if y == board.Size-1 {
		return board.Empty
	}
	dy := c.Forward()
	return leaps(board.C(x, y), []board.Direction{{DX: -1, DY: dy}, {DX: 1, DY: dy}})
}

func leaps(from board.Coord, offsets []board.Direction) board.Bitboard {
	mustOnBoard(from.X, from.Y)
	bb := board.Empty
	for _, d := range offsets {
		if to := from.Add(d); to.OnBoard() {
			bb = bb.Set(to.Square())
		}
	}
	return bb
}
