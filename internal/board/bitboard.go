package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit m is square m: Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8.
// Values are immutable; every operation returns a new Bitboard.
type Bitboard uint64

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	mustValid(sq)
	return 1 << sq
}

// FromSquares returns a bitboard with the given squares set.
func FromSquares(squares ...Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b = b.Set(sq)
	}
	return b
}

// FromUint64 is the inverse of Uint64.
func FromUint64(v uint64) Bitboard {
	return Bitboard(v)
}

// Uint64 serializes the bitboard: bit m of the result is set exactly when
// square m is marked.
func (b Bitboard) Uint64() uint64 {
	return uint64(b)
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Unset clears a bit at the given square.
func (b Bitboard) Unset(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// Flip complements every bit.
func (b Bitboard) Flip() Bitboard {
	return ^b
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// String returns the diagnostic 8x8 grid, rank 1 first as the generator
// historically printed it. Marked squares are X, others _.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for y := 0; y < Size; y++ {
		sb.WriteByte('|')
		for x := 0; x < Size; x++ {
			if b.IsSet(NewSquare(x, y)) {
				sb.WriteString("X|")
			} else {
				sb.WriteString("_|")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ForEach calls the function for each set square in index order.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		sq := b.LSB()
		b &= b - 1
		f(sq)
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	b.ForEach(func(sq Square) {
		squares = append(squares, sq)
	})
	return squares
}

func mustValid(sq Square) {
	if !sq.IsValid() {
		panic("board: square index out of range: " + sq.String())
	}
}
