package tables

import (
	"errors"
	"testing"

	"github.com/hailam/bbtables/internal/board"
)

func TestBuildOrder(t *testing.T) {
	table := Build(func(x, y int) board.Bitboard {
		return board.SquareBB(board.NewSquare(x, y))
	})
	if err := table.Validate(); err != nil {
		t.Fatal(err)
	}
	for i, bb := range table {
		if bb.LSB() != board.Square(i) {
			t.Fatalf("entry %d holds %s", i, bb.LSB())
		}
	}
}

func TestBuild2DOrder(t *testing.T) {
	table := Build2D(func(a, b board.Square) board.Bitboard {
		return board.FromSquares(a, b)
	})
	if err := table.Validate(); err != nil {
		t.Fatal(err)
	}
	for a := range table {
		for b := range table[a] {
			want := board.FromSquares(board.Square(a), board.Square(b))
			if table.At(board.Square(a), board.Square(b)) != want {
				t.Fatalf("entry [%d][%d] misplaced", a, b)
			}
		}
	}
}

func TestValidateShape(t *testing.T) {
	short := make(Table, 63)
	if err := short.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("Validate(63 entries) = %v, want ErrShape", err)
	}

	nested := make(Table2D, 64)
	for i := range nested {
		nested[i] = make(Table, 64)
	}
	nested[17] = nested[17][:10]
	if err := nested.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("Validate(ragged) = %v, want ErrShape", err)
	}

	n := &Named{Name: "Broken", Shape: Flat, flat: short}
	if err := n.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("Named.Validate = %v, want ErrShape", err)
	}
}

func TestGenerate(t *testing.T) {
	cat, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{
		"FileMasks", "RankMasks", "DiagonalMasks", "AntiDiagonalMasks",
		"KnightMoves", "KingMoves", "WhitePawnCaptures", "BlackPawnCaptures",
		"Between", "Lines",
	}
	names := cat.Names()
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	for _, n := range cat.Tables() {
		vals := n.Values()
		if len(vals) != n.Len() {
			t.Errorf("%s: %d values, want %d", n.Name, len(vals), n.Len())
		}
		rows := n.Rows()
		if n.Shape == Nested && len(rows) != 64 {
			t.Errorf("%s: %d rows", n.Name, len(rows))
		}
		if n.Shape == Flat && len(rows) != 1 {
			t.Errorf("%s: %d rows", n.Name, len(rows))
		}
	}
}

func TestCatalogEntries(t *testing.T) {
	cat, err := Generate()
	if err != nil {
		t.Fatal(err)
	}

	files, err := cat.Lookup("FileMasks")
	if err != nil {
		t.Fatal(err)
	}
	if files.Shape != Flat {
		t.Errorf("FileMasks shape = %s", files.Shape)
	}
	if got := files.Values()[board.A1]; got != 0x0101010101010101 {
		t.Errorf("FileMasks[a1] = %016x", got)
	}
	if got := files.Describe(int(board.E4)); got != "e4" {
		t.Errorf("Describe(e4) = %q", got)
	}

	between, err := cat.Lookup("Between")
	if err != nil {
		t.Fatal(err)
	}
	idx := int(board.A1)*64 + int(board.H8)
	if got := between.Values()[idx]; got != Between(board.A1, board.H8).Uint64() {
		t.Errorf("Between values[a1,h8] = %016x", got)
	}
	if got := between.Nested().At(board.A1, board.H8); got != Between(board.A1, board.H8) {
		t.Errorf("Between.At(a1,h8) = %v", got.Squares())
	}
	if got := between.Describe(idx); got != "a1-h8" {
		t.Errorf("Describe = %q, want a1-h8", got)
	}

	if _, err := cat.Lookup("QueenMoves"); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Lookup(QueenMoves) = %v, want ErrUnknownTable", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range a.Names() {
		ta, _ := a.Lookup(name)
		tb, _ := b.Lookup(name)
		va, vb := ta.Values(), tb.Values()
		for i := range va {
			if va[i] != vb[i] {
				t.Fatalf("%s differs at %d between runs", name, i)
			}
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
