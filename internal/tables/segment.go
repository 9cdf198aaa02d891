// Package tables builds the precomputed geometry masks consumed by the move
// generator. Every straight-line relationship reduces to one ray walk,
// Segment, parameterized by its end points.
package tables

import (
	"fmt"

	"github.com/hailam/bbtables/internal/board"
)

// Endpoints selects which ends of a segment are marked.
type Endpoints uint8

const (
	IncludeStart Endpoints = 1 << iota
	IncludeEnd

	// Exclusive marks neither end.
	Exclusive Endpoints = 0
	// Inclusive marks both ends.
	Inclusive = IncludeStart | IncludeEnd
)

// Segment walks from start in steps of dir, marking each square, until it
// reaches end or leaves the board. end may be an off-board sentinel.
//
// With IncludeEnd, end is marked if the walk stopped on it inside the board.
// Without IncludeStart, start is unmarked after the walk.
//
// start must be on the board and dir must be non-zero unless start == end;
// violations panic.
func Segment(start board.Coord, dir board.Direction, end board.Coord, ends Endpoints) board.Bitboard {
	if !start.OnBoard() {
		panic(fmt.Sprintf("tables: segment start %v is off the board", start))
	}
	if dir.IsZero() && start != end {
		panic(fmt.Sprintf("tables: zero direction from %v to %v", start, end))
	}

	bb := board.Empty
	cur := start
	for cur != end && cur.OnBoard() {
		bb = bb.Set(cur.Square())
		cur = cur.Add(dir)
	}

	if ends&IncludeEnd != 0 && cur == end && end.OnBoard() {
		bb = bb.Set(end.Square())
	}
	if ends&IncludeStart == 0 {
		bb = bb.Unset(start.Square())
	}
	return bb
}
