package main

import (
	"fmt"
	"strings"

	"github.com/hailam/bbtables/internal/board"
	"github.com/hailam/bbtables/internal/tables"
)

// selection is one mask picked out of the catalog by a "Table:e4" or
// "Between:a1-h8" argument.
type selection struct {
	Table  *tables.Named
	Origin board.Square
	Target board.Square
	Mask   board.Bitboard
}

func (s selection) String() string {
	if s.Target != board.NoSquare {
		return fmt.Sprintf("%s[%s][%s]", s.Table.Name, s.Origin, s.Target)
	}
	return fmt.Sprintf("%s[%s]", s.Table.Name, s.Origin)
}

func parseSelection(cat *tables.Catalog, arg string) (selection, error) {
	name, squares, ok := strings.Cut(arg, ":")
	if !ok {
		return selection{}, fmt.Errorf("selection %q: want Table:square", arg)
	}

	n, err := cat.Lookup(name)
	if err != nil {
		return selection{}, err
	}
	sel := selection{Table: n, Target: board.NoSquare}

	from, to, pair := strings.Cut(squares, "-")
	if sel.Origin, err = board.ParseSquare(from); err != nil {
		return selection{}, err
	}

	switch {
	case n.Shape == tables.Nested && !pair:
		return selection{}, fmt.Errorf("selection %q: %s needs two squares (a1-h8)", arg, name)
	case n.Shape == tables.Flat && pair:
		return selection{}, fmt.Errorf("selection %q: %s takes one square", arg, name)
	case pair:
		if sel.Target, err = board.ParseSquare(to); err != nil {
			return selection{}, err
		}
		sel.Mask = n.Nested().At(sel.Origin, sel.Target)
	default:
		sel.Mask = n.Flat().At(sel.Origin)
	}
	return sel, nil
}

// selectTables returns the named subset of the catalog, or all tables when
// list is empty.
func selectTables(cat *tables.Catalog, list string) ([]*tables.Named, error) {
	if list == "" {
		return cat.Tables(), nil
	}
	var out []*tables.Named
	for _, name := range strings.Split(list, ",") {
		n, err := cat.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
