package tables

import (
	"testing"

	"github.com/hailam/bbtables/internal/board"
)

func TestFileAndRankMasks(t *testing.T) {
	for _, sq := range board.AllSquares() {
		x, y := sq.File(), sq.Rank()
		file := FileMask(x, y)
		rank := RankMask(x, y)

		if file.PopCount() != 8 || !file.IsSet(sq) {
			t.Fatalf("FileMask(%s) = %v", sq, file.Squares())
		}
		if rank.PopCount() != 8 || !rank.IsSet(sq) {
			t.Fatalf("RankMask(%s) = %v", sq, rank.Squares())
		}
		file.ForEach(func(o board.Square) {
			if o.File() != x {
				t.Errorf("FileMask(%s) contains %s", sq, o)
			}
		})
		rank.ForEach(func(o board.Square) {
			if o.Rank() != y {
				t.Errorf("RankMask(%s) contains %s", sq, o)
			}
		})
	}
}

func TestLineMasksA1(t *testing.T) {
	file := FileMask(0, 0)
	wantFile := board.FromSquares(0, 8, 16, 24, 32, 40, 48, 56)
	if file != wantFile {
		t.Errorf("FileMask(a1) = %v, want %v", file.Squares(), wantFile.Squares())
	}

	rank := RankMask(0, 0)
	if rank.Uint64() != 0xFF {
		t.Errorf("RankMask(a1) = %016x, want 0xff", rank.Uint64())
	}

	if got := DiagonalMask(0, 0).Uint64(); got != 0x8040201008040201 {
		t.Errorf("DiagonalMask(a1) = %016x", got)
	}
	if got := AntiDiagonalMask(0, 0); got != board.SquareBB(board.A1) {
		t.Errorf("AntiDiagonalMask(a1) = %v", got.Squares())
	}
	if got := AntiDiagonalMask(7, 0).Uint64(); got != 0x0102040810204080 {
		t.Errorf("AntiDiagonalMask(h1) = %016x", got)
	}
}

func TestDiagonalMasks(t *testing.T) {
	for _, s := range board.AllSquares() {
		sx, sy := s.File(), s.Rank()
		diag := DiagonalMask(sx, sy)
		anti := AntiDiagonalMask(sx, sy)

		if !diag.IsSet(s) || !anti.IsSet(s) {
			t.Fatalf("square %s missing from its own diagonals", s)
		}

		for _, o := range board.AllSquares() {
			ox, oy := o.File(), o.Rank()
			if diag.IsSet(o) != (oy-ox == sy-sx) {
				t.Errorf("DiagonalMask(%s) membership of %s is wrong", s, o)
			}
			if anti.IsSet(o) != (ox+oy == sx+sy) {
				t.Errorf("AntiDiagonalMask(%s) membership of %s is wrong", s, o)
			}
			if diag.IsSet(o) != DiagonalMask(ox, oy).IsSet(s) {
				t.Errorf("DiagonalMask not symmetric for %s, %s", s, o)
			}
			if anti.IsSet(o) != AntiDiagonalMask(ox, oy).IsSet(s) {
				t.Errorf("AntiDiagonalMask not symmetric for %s, %s", s, o)
			}
		}
	}
}

func TestDiagonalExamples(t *testing.T) {
	e3 := DiagonalMask(4, 2)
	want := board.FromSquares(board.C1, board.D2, board.E3, board.F4, board.G5, board.H6)
	if e3 != want {
		t.Errorf("DiagonalMask(e3) = %v, want %v", e3.Squares(), want.Squares())
	}

	g3 := AntiDiagonalMask(6, 2)
	want = board.FromSquares(board.B8, board.C7, board.D6, board.E5, board.F4, board.G3, board.H2)
	if g3 != want {
		t.Errorf("AntiDiagonalMask(g3) = %v, want %v", g3.Squares(), want.Squares())
	}
}
