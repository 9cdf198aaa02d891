// bbtables viewer - browse the generated geometry tables with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/bbtables/internal/tables"
	"github.com/hailam/bbtables/internal/ui"
)

var initial = flag.String("table", "", "table to show first")

func main() {
	flag.Parse()

	cat, err := tables.Generate()
	if err != nil {
		log.Fatal(err)
	}

	viewer := ui.NewViewer(cat)
	if *initial != "" {
		if err := viewer.Select(*initial); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("bbtables")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
