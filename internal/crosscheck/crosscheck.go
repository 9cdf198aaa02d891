// Package crosscheck compares generated line tables against the empty-board
// slider attacks of an independent move generator.
package crosscheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/bbtables/internal/board"
	"github.com/hailam/bbtables/internal/tables"
)

// ErrMismatch is returned when any square disagrees with the reference.
var ErrMismatch = errors.New("crosscheck: tables disagree with reference")

// Mismatch is one square where the generated and reference masks differ.
type Mismatch struct {
	Piece  string // "rook" or "bishop"
	Square board.Square
	Got    board.Bitboard
	Want   board.Bitboard
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s on %s: got %016x, want %016x", m.Piece, m.Square, m.Got.Uint64(), m.Want.Uint64())
}

// Report lists every mismatch found.
type Report struct {
	Checked    int
	Mismatches []Mismatch
}

// Err returns ErrMismatch with a summary when the report has mismatches.
func (r *Report) Err() error {
	if len(r.Mismatches) == 0 {
		return nil
	}
	lines := make([]string, 0, len(r.Mismatches))
	for _, m := range r.Mismatches {
		lines = append(lines, m.String())
	}
	return fmt.Errorf("%w (%d of %d):\n%s", ErrMismatch, len(r.Mismatches), r.Checked, strings.Join(lines, "\n"))
}

// Oracle returns the empty-board slider attacks of a square.
type Oracle interface {
	Rook(sq board.Square) board.Bitboard
	Bishop(sq board.Square) board.Bitboard
}

// Dragontooth is the Oracle backed by dragontoothmg's magic bitboards.
type Dragontooth struct{}

func (Dragontooth) Rook(sq board.Square) board.Bitboard {
	return board.FromUint64(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), 0))
}

func (Dragontooth) Bishop(sq board.Square) board.Bitboard {
	return board.FromUint64(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), 0))
}

// Check compares the line tables of cat with the oracle. Rook attacks must
// equal file | rank without the square itself, bishop attacks diagonal |
// anti-diagonal without it.
func Check(cat *tables.Catalog, oracle Oracle) (*Report, error) {
	lookup := func(name string) (tables.Table, error) {
		n, err := cat.Lookup(name)
		if err != nil {
			return nil, err
		}
		return n.Flat(), nil
	}

	files, err := lookup("FileMasks")
	if err != nil {
		return nil, err
	}
	ranks, err := lookup("RankMasks")
	if err != nil {
		return nil, err
	}
	diags, err := lookup("DiagonalMasks")
	if err != nil {
		return nil, err
	}
	antis, err := lookup("AntiDiagonalMasks")
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, sq := range board.AllSquares() {
		rook := (files.At(sq) | ranks.At(sq)).Unset(sq)
		if want := oracle.Rook(sq); rook != want {
			report.Mismatches = append(report.Mismatches, Mismatch{"rook", sq, rook, want})
		}
		bishop := (diags.At(sq) | antis.At(sq)).Unset(sq)
		if want := oracle.Bishop(sq); bishop != want {
			report.Mismatches = append(report.Mismatches, Mismatch{"bishop", sq, bishop, want})
		}
		report.Checked += 2
	}
	return report, nil
}
