package tables

import (
	"testing"

	"github.com/hailam/bbtables/internal/board"
)

func TestLeaperMasksExcludeOrigin(t *testing.T) {
	for _, sq := range board.AllSquares() {
		x, y := sq.File(), sq.Rank()
		knight := KnightMask(x, y)
		king := KingMask(x, y)

		if knight.IsSet(sq) || king.IsSet(sq) {
			t.Errorf("leaper mask of %s contains the square itself", sq)
		}

		king.ForEach(func(o board.Square) {
			if max(abs(o.File()-x), abs(o.Rank()-y)) != 1 {
				t.Errorf("KingMask(%s) contains %s", sq, o)
			}
		})
		knight.ForEach(func(o board.Square) {
			if abs(o.File()-x)*abs(o.Rank()-y) != 2 {
				t.Errorf("KnightMask(%s) contains %s", sq, o)
			}
		})
	}
}

func TestLeaperCounts(t *testing.T) {
	kingCounts := map[int]bool{3: true, 5: true, 8: true}
	knightCounts := map[int]bool{2: true, 3: true, 4: true, 6: true, 8: true}

	for _, sq := range board.AllSquares() {
		x, y := sq.File(), sq.Rank()
		if n := KingMask(x, y).PopCount(); !kingCounts[n] {
			t.Errorf("|KingMask(%s)| = %d", sq, n)
		}
		if n := KnightMask(x, y).PopCount(); !knightCounts[n] {
			t.Errorf("|KnightMask(%s)| = %d", sq, n)
		}
	}

	tests := []struct {
		sq           board.Square
		king, knight int
	}{
		{board.A1, 3, 2},
		{board.H8, 3, 2},
		{board.A4, 5, 4},
		{board.B1, 5, 3},
		{board.B2, 8, 4},
		{board.E4, 8, 8},
	}
	for _, tc := range tests {
		x, y := tc.sq.File(), tc.sq.Rank()
		if n := KingMask(x, y).PopCount(); n != tc.king {
			t.Errorf("|KingMask(%s)| = %d, want %d", tc.sq, n, tc.king)
		}
		if n := KnightMask(x, y).PopCount(); n != tc.knight {
			t.Errorf("|KnightMask(%s)| = %d, want %d", tc.sq, n, tc.knight)
		}
	}
}

func TestKnightMaskA1(t *testing.T) {
	got := KnightMask(0, 0)
	want := board.FromSquares(10, 17)
	if got != want {
		t.Errorf("KnightMask(a1) = %v, want %v", got.Squares(), want.Squares())
	}
}

func TestPawnCaptureMask(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		color board.Color
		want  board.Bitboard
	}{
		{"white center", 4, 3, board.White, board.FromSquares(board.D3, board.F3)},
		{"black center", 4, 3, board.Black, board.FromSquares(board.D5, board.F5)},
		{"white a-file", 0, 3, board.White, board.SquareBB(board.B3)},
		{"black h-file", 7, 3, board.Black, board.SquareBB(board.G5)},
		{"white first rank", 3, 0, board.White, board.Empty},
		{"black last rank", 0, 7, board.Black, board.Empty},
		{"black sixth rank", 3, 6, board.Black, board.FromSquares(board.C8, board.E8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PawnCaptureMask(tc.x, tc.y, tc.color)
			if got != tc.want {
				t.Errorf("PawnCaptureMask(%d,%d,%s) = %v, want %v",
					tc.x, tc.y, tc.color, got.Squares(), tc.want.Squares())
			}
		})
	}
}

// The y == 7 guard empties the mask for both colors, even though a white pawn
// there would otherwise capture onto y == 6. Changing this alters the emitted
// tables the engine was built against.
func TestPawnCaptureLastRankGuard(t *testing.T) {
	for x := 0; x < board.Size; x++ {
		for _, c := range []board.Color{board.White, board.Black} {
			if got := PawnCaptureMask(x, 7, c); got != board.Empty {
				t.Errorf("PawnCaptureMask(%d,7,%s) = %v, want empty", x, c, got.Squares())
			}
		}
		if got := PawnCaptureMask(x, 6, board.White); got.Empty() {
			t.Errorf("PawnCaptureMask(%d,6,White) is empty", x)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
