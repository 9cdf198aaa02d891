package tables

import (
	"errors"
	"fmt"

	"github.com/hailam/bbtables/internal/board"
)

// ErrUnknownTable is returned by Lookup for a name not in the catalog.
var ErrUnknownTable = errors.New("tables: unknown table")

// Shape distinguishes flat (per-square) tables from pairwise ones.
type Shape int

const (
	Flat Shape = iota
	Nested
)

func (s Shape) String() string {
	switch s {
	case Flat:
		return "flat"
	case Nested:
		return "nested"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Named is one generated table together with the metadata an emitter needs.
type Named struct {
	Name  string
	Doc   string
	Shape Shape

	flat   Table
	nested Table2D
}

// Len returns the number of entries in row-major order.
func (n *Named) Len() int {
	if n.Shape == Nested {
		return board.NumSquares * board.NumSquares
	}
	return board.NumSquares
}

// Flat returns the table of a flat entry, or nil for a nested one.
func (n *Named) Flat() Table {
	return n.flat
}

// Nested returns the matrix of a nested entry, or nil for a flat one.
func (n *Named) Nested() Table2D {
	return n.nested
}

// Values returns every entry serialized, row-major.
func (n *Named) Values() []uint64 {
	vals := make([]uint64, 0, n.Len())
	if n.Shape == Nested {
		for _, row := range n.nested {
			vals = appendValues(vals, row)
		}
		return vals
	}
	return appendValues(vals, n.flat)
}

// Rows returns the values grouped by row: one row for a flat table, 64 for a
// nested one.
func (n *Named) Rows() [][]uint64 {
	if n.Shape == Nested {
		rows := make([][]uint64, len(n.nested))
		for i, row := range n.nested {
			rows[i] = appendValues(nil, row)
		}
		return rows
	}
	return [][]uint64{appendValues(nil, n.flat)}
}

// Describe returns the per-entry text: "e4" for flat tables and "a1-h8" for
// nested ones.
func (n *Named) Describe(i int) string {
	if n.Shape == Nested {
		return fmt.Sprintf("%s-%s", board.Square(i/board.NumSquares), board.Square(i%board.NumSquares))
	}
	return board.Square(i).String()
}

// Validate checks the table's shape.
func (n *Named) Validate() error {
	var err error
	if n.Shape == Nested {
		err = n.nested.Validate()
	} else {
		err = n.flat.Validate()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", n.Name, err)
	}
	return nil
}

func appendValues(dst []uint64, t Table) []uint64 {
	for _, bb := range t {
		dst = append(dst, bb.Uint64())
	}
	return dst
}

// Catalog is the full, immutable set of generated tables.
type Catalog struct {
	tables []*Named
	byName map[string]*Named
}

// Generate builds and validates every table. On error no catalog is returned.
func Generate() (*Catalog, error) {
	cat := &Catalog{byName: make(map[string]*Named)}

	flat := func(name, doc string, fn func(x, y int) board.Bitboard) {
		cat.add(&Named{Name: name, Doc: doc, Shape: Flat, flat: Build(fn)})
	}
	nested := func(name, doc string, fn func(a, b board.Square) board.Bitboard) {
		cat.add(&Named{Name: name, Doc: doc, Shape: Nested, nested: Build2D(fn)})
	}

	flat("FileMasks", "All squares on the file of each square.", FileMask)
	flat("RankMasks", "All squares on the rank of each square.", RankMask)
	flat("DiagonalMasks", "All squares on the a1-h8 diagonal through each square.", DiagonalMask)
	flat("AntiDiagonalMasks", "All squares on the a8-h1 diagonal through each square.", AntiDiagonalMask)
	flat("KnightMoves", "Knight targets from each square.", KnightMask)
	flat("KingMoves", "King targets from each square.", KingMask)
	flat("WhitePawnCaptures", "White pawn capture targets from each square.", func(x, y int) board.Bitboard {
		return PawnCaptureMask(x, y, board.White)
	})
	flat("BlackPawnCaptures", "Black pawn capture targets from each square.", func(x, y int) board.Bitboard {
		return PawnCaptureMask(x, y, board.Black)
	})
	nested("Between", "Squares strictly between two colinear squares.", Between)
	nested("Lines", "Full line through two colinear squares.", Line)

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) add(n *Named) {
	if _, dup := c.byName[n.Name]; dup {
		panic("tables: duplicate table " + n.Name)
	}
	c.tables = append(c.tables, n)
	c.byName[n.Name] = n
}

// Validate checks every table's shape.
func (c *Catalog) Validate() error {
	var errs []error
	for _, n := range c.tables {
		if err := n.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Tables returns the tables in generation order.
func (c *Catalog) Tables() []*Named {
	return append([]*Named(nil), c.tables...)
}

// Names returns the table names in generation order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tables))
	for i, n := range c.tables {
		names[i] = n.Name
	}
	return names
}

// Lookup returns the table with the given name.
func (c *Catalog) Lookup(name string) (*Named, error) {
	n, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return n, nil
}
