package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/bbtables/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Origin      color.RGBA
	Target      color.RGBA
	MarkColor   color.RGBA
	Background  color.RGBA
	TextColor   color.RGBA
	DimText     color.RGBA
	Accent      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		Origin:      color.RGBA{247, 247, 105, 180}, // Yellow highlight
		Target:      color.RGBA{255, 100, 100, 180}, // Red
		MarkColor:   color.RGBA{130, 151, 105, 220}, // Green dots
		Background:  color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:   color.RGBA{220, 220, 220, 255}, // Light gray
		DimText:     color.RGBA{140, 140, 140, 255},
		Accent:      color.RGBA{120, 170, 255, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the board squares and their coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			px, py := r.SquareToScreen(board.NewSquare(x, y))

			c := r.theme.DarkSquare
			if (x+y)%2 == 1 {
				c = r.theme.LightSquare
			}
			vector.DrawFilledRect(screen, r.s(px), r.s(py), r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}
	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along rank 1 and rank numbers along the a-file.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11 * r.scale)
	if face == nil {
		return
	}
	for i := 0; i < board.Size; i++ {
		fx, fy := r.SquareToScreen(board.NewSquare(i, 0))
		r.drawText(screen, string(rune('a'+i)), fx+r.squareSize-10, fy+r.squareSize-16, r.theme.DimText, face)

		rx, ry := r.SquareToScreen(board.NewSquare(0, i))
		r.drawText(screen, string(rune('1'+i)), rx+3, ry+2, r.theme.DimText, face)
	}
}

// DrawMask marks every square set in bb.
func (r *Renderer) DrawMask(screen *ebiten.Image, bb board.Bitboard) {
	bb.ForEach(func(sq board.Square) {
		x, y := r.SquareToScreen(sq)
		cx := r.s(x) + r.s(r.squareSize)/2
		cy := r.s(y) + r.s(r.squareSize)/2
		vector.DrawFilledCircle(screen, cx, cy, r.s(r.squareSize)*0.2, r.theme.MarkColor, true)
	})
}

// HighlightSquare draws a colored overlay on a square.
func (r *Renderer) HighlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y int, c color.Color, face *text.GoTextFace) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.s(x)), float64(r.s(y)))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize // Flip so rank 1 is at bottom
	return x, y
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize)
	return board.NewSquare(file, rank)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
