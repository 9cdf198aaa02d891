package board

import (
	"math/rand"
	"strings"
	"testing"
)

func TestSquareIndexMapping(t *testing.T) {
	tests := []struct {
		x, y int
		want Square
		name string
	}{
		{0, 0, A1, "a1"},
		{7, 0, H1, "h1"},
		{0, 7, A8, "a8"},
		{7, 7, H8, "h8"},
		{4, 3, E4, "e4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sq := NewSquare(tc.x, tc.y)
			if sq != tc.want {
				t.Errorf("NewSquare(%d,%d) = %d, want %d", tc.x, tc.y, sq, tc.want)
			}
			if int(sq) != tc.x+tc.y*8 {
				t.Errorf("index %d does not follow x + y*8", sq)
			}
			if sq.File() != tc.x || sq.Rank() != tc.y {
				t.Errorf("File/Rank = %d/%d, want %d/%d", sq.File(), sq.Rank(), tc.x, tc.y)
			}
			if sq.String() != tc.name {
				t.Errorf("String() = %q, want %q", sq.String(), tc.name)
			}
			parsed, err := ParseSquare(tc.name)
			if err != nil || parsed != sq {
				t.Errorf("ParseSquare(%q) = %v, %v", tc.name, parsed, err)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "a0", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) should fail", s)
		}
	}
}

func TestNewSquarePanicsOffBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewSquare(8, 0) did not panic")
		}
	}()
	NewSquare(8, 0)
}

func TestBitboardSetUnsetFlip(t *testing.T) {
	b := Empty.Set(A1).Set(E4).Set(H8)
	if b.PopCount() != 3 {
		t.Fatalf("PopCount = %d, want 3", b.PopCount())
	}
	if !b.IsSet(E4) || b.IsSet(E5) {
		t.Errorf("IsSet mismatch: %v", b)
	}

	unset := b.Unset(E4)
	if unset.IsSet(E4) {
		t.Error("Unset did not clear e4")
	}
	if !b.IsSet(E4) {
		t.Error("Unset mutated the receiver")
	}

	flipped := b.Flip()
	if flipped.PopCount() != 61 || flipped.IsSet(A1) || !flipped.IsSet(B1) {
		t.Errorf("Flip produced %016x", flipped.Uint64())
	}
	if flipped.Flip() != b {
		t.Error("double Flip is not the identity")
	}
}

func TestBitboardSerializationIdentity(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		got := SquareBB(sq).Uint64()
		if got != uint64(1)<<sq {
			t.Fatalf("square %s serialized to %016x, want bit %d", sq, got, sq)
		}
	}

	if got := FromSquares(A1, B1, C1, D1, E1, F1, G1, H1).Uint64(); got != 0xFF {
		t.Errorf("rank 1 serialized to %016x, want 0xff", got)
	}
}

func TestBitboardRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := []uint64{0, 1, 1 << 63, 0xFFFFFFFFFFFFFFFF, 0x8000000000000001}
	for i := 0; i < 1000; i++ {
		values = append(values, rng.Uint64())
	}
	for _, v := range values {
		if got := FromUint64(v).Uint64(); got != v {
			t.Fatalf("round trip of %016x gave %016x", v, got)
		}
	}
}

func TestBitboardSquares(t *testing.T) {
	b := FromSquares(H8, A1, D4)
	got := b.Squares()
	want := []Square{A1, D4, H8}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBitboardString(t *testing.T) {
	s := SquareBB(A1).String()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 rows, got %d:\n%s", len(lines), s)
	}
	if lines[0] != "|X|_|_|_|_|_|_|_|" {
		t.Errorf("first row = %q", lines[0])
	}
}
