package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/bbtables/internal/board"
	"github.com/hailam/bbtables/internal/tables"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Viewer.Layout() and used by the input handler.
var UIScale float64 = 1.0

// Viewer implements ebiten.Game and browses a generated catalog.
type Viewer struct {
	catalog *tables.Catalog
	tables  []*tables.Named
	current int

	origin board.Square
	target board.Square // only used by nested tables

	renderer *Renderer
	input    *InputHandler

	scale float64
}

// NewViewer creates a viewer over cat, starting at the first table.
func NewViewer(cat *tables.Catalog) *Viewer {
	return &Viewer{
		catalog:  cat,
		tables:   cat.Tables(),
		origin:   board.E4,
		target:   board.H7,
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		scale:    1.0,
	}
}

// Select switches to the named table.
func (v *Viewer) Select(name string) error {
	for i, n := range v.tables {
		if n.Name == name {
			v.current = i
			return nil
		}
	}
	_, err := v.catalog.Lookup(name)
	return err
}

// Table returns the table being shown.
func (v *Viewer) Table() *tables.Named {
	return v.tables[v.current]
}

// Mask returns the mask currently on screen.
func (v *Viewer) Mask() board.Bitboard {
	n := v.Table()
	if n.Shape == tables.Nested {
		return n.Nested().At(v.origin, v.target)
	}
	return n.Flat().At(v.origin)
}

// Update handles input once per frame.
func (v *Viewer) Update() error {
	v.input.Update()

	if v.input.KeyJustPressed(ebiten.KeyTab) {
		step := 1
		if v.input.ShiftHeld() {
			step = len(v.tables) - 1
		}
		v.current = (v.current + step) % len(v.tables)
	}

	moves := map[ebiten.Key]board.Direction{
		ebiten.KeyArrowUp:    board.North,
		ebiten.KeyArrowDown:  board.South,
		ebiten.KeyArrowLeft:  board.West,
		ebiten.KeyArrowRight: board.East,
	}
	for key, dir := range moves {
		if v.input.KeyJustPressed(key) {
			if next := v.origin.Coord().Add(dir); next.OnBoard() {
				v.origin = next.Square()
			}
		}
	}

	mx, my := v.input.MousePosition()
	if sq := v.renderer.ScreenToSquare(mx, my); sq != board.NoSquare {
		if v.input.IsLeftJustPressed() {
			v.origin = sq
		}
		if v.input.IsRightJustPressed() && v.Table().Shape == tables.Nested {
			v.target = sq
		}
	}

	return nil
}

// Draw renders the board, the current mask and the info panel.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.SetScale(v.scale)
	theme := v.renderer.Theme()

	screen.Fill(theme.Background)
	v.renderer.DrawBoard(screen)
	v.renderer.HighlightSquare(screen, v.origin, theme.Origin)
	if v.Table().Shape == tables.Nested {
		v.renderer.HighlightSquare(screen, v.target, theme.Target)
	}
	v.renderer.DrawMask(screen, v.Mask())

	v.drawPanel(screen)
}

func (v *Viewer) drawPanel(screen *ebiten.Image) {
	r := v.renderer
	theme := r.Theme()
	x := BoardSize + 16
	y := 16

	n := v.Table()
	r.drawText(screen, n.Name, x, y, theme.TextColor, scaled(boldFace, v.scale))
	y += 28
	r.drawText(screen, n.Doc, x, y, theme.DimText, GetFaceWithSize(11*v.scale))
	y += 28

	where := v.origin.String()
	if n.Shape == tables.Nested {
		where = fmt.Sprintf("%s - %s", v.origin, v.target)
	}
	mask := v.Mask()
	for _, line := range []string{
		where,
		fmt.Sprintf("0x%016x", mask.Uint64()),
		fmt.Sprintf("%d squares", mask.PopCount()),
	} {
		r.drawText(screen, line, x, y, theme.TextColor, scaled(monoFace, v.scale))
		y += 22
	}

	y += 16
	for i, t := range v.tables {
		c := theme.DimText
		if i == v.current {
			c = theme.Accent
		}
		r.drawText(screen, t.Name, x, y, c, scaled(regularFace, v.scale))
		y += 20
	}

	y = ScreenHeight - 60
	for _, help := range []string{"Tab / Shift+Tab: table", "Arrows, left click: square", "Right click: target square"} {
		r.drawText(screen, help, x, y, theme.DimText, GetFaceWithSize(11*v.scale))
		y += 16
	}
}

// Layout returns the screen dimensions scaled for HiDPI displays.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.scale = ebiten.Monitor().DeviceScaleFactor()
	if v.scale < 1.0 {
		v.scale = 1.0
	}
	UIScale = v.scale

	return int(float64(ScreenWidth) * v.scale), int(float64(ScreenHeight) * v.scale)
}
