// Package render draws bitboards for diagnostics: SVG boards, rasterized
// PNGs and contact sheets of whole tables. Nothing here is part of the
// emitted data.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/bbtables/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare string
	DarkSquare  string
	Marked      string
	Origin      string
	Target      string
	Background  string
	TextColor   string
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		LightSquare: "#f0d9b5", // Tan
		DarkSquare:  "#b58863", // Brown
		Marked:      "#829769", // Green
		Origin:      "#f7f769", // Yellow
		Target:      "#ff6464", // Red
		Background:  "#282c34",
		TextColor:   "#dcdcdc",
	}
}

// Options control how a board is drawn.
type Options struct {
	Cell   int          // pixels per square; 40 if zero
	Origin board.Square // highlighted square, NoSquare for none
	Target board.Square // second highlighted square, NoSquare for none
	Labels bool         // file and rank labels around the board
	Theme  Theme
}

// DefaultOptions returns 40px cells with labels and no highlights.
func DefaultOptions() Options {
	return Options{
		Cell:   40,
		Origin: board.NoSquare,
		Target: board.NoSquare,
		Labels: true,
		Theme:  DefaultTheme(),
	}
}

func (o Options) normalized() Options {
	if o.Cell <= 0 {
		o.Cell = 40
	}
	if o.Theme == (Theme{}) {
		o.Theme = DefaultTheme()
	}
	return o
}

func (o Options) margin() int {
	if o.Labels {
		return o.Cell / 2
	}
	return 0
}

// WriteSVG draws bb as an 8x8 board with rank 8 at the top.
func WriteSVG(w io.Writer, bb board.Bitboard, opts Options) {
	o := opts.normalized()
	m := o.margin()
	side := o.Cell*board.Size + 2*m

	canvas := svg.New(w)
	canvas.Startview(side, side, 0, 0, side, side)

	if o.Labels {
		canvas.Rect(0, 0, side, side, fill(o.Theme.Background))
	}

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			sq := board.NewSquare(x, y)
			px, py := m+x*o.Cell, m+(board.Size-1-y)*o.Cell

			color := o.Theme.DarkSquare
			if (x+y)%2 == 1 {
				color = o.Theme.LightSquare
			}
			switch sq {
			case o.Origin:
				color = o.Theme.Origin
			case o.Target:
				color = o.Theme.Target
			}
			canvas.Rect(px, py, o.Cell, o.Cell, fill(color))

			if bb.IsSet(sq) {
				canvas.Circle(px+o.Cell/2, py+o.Cell/2, o.Cell/4, fill(o.Theme.Marked))
			}
		}
	}

	if o.Labels {
		style := fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%dpx;text-anchor:middle", o.Theme.TextColor, m*2/3)
		for i := 0; i < board.Size; i++ {
			c := m + i*o.Cell + o.Cell/2
			canvas.Text(c, side-m/4, string(rune('a'+i)), style)
			canvas.Text(m/2, m+(board.Size-1-i)*o.Cell+o.Cell/2+m/4, string(rune('1'+i)), style)
		}
	}

	canvas.End()
}

func fill(color string) string {
	return "fill:" + color
}
