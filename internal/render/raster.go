package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"runtime"

	"github.com/go-logr/logr"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/bbtables/internal/board"
	"github.com/hailam/bbtables/internal/tables"
)

// Rasterize renders bb to a size x size image. Labels are dropped since the
// rasterizer does not draw text.
func Rasterize(bb board.Bitboard, opts Options, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: invalid size %d", size)
	}
	opts.Labels = false
	opts.Cell = max(size/board.Size, 1)

	var buf bytes.Buffer
	WriteSVG(&buf, bb, opts)

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// Atlas renders all 64 masks of a table into an 8x8 contact sheet, each mask
// placed on the square it belongs to with that square highlighted. Cells are
// rasterized at twice the final size and scaled down.
func Atlas(ctx context.Context, t tables.Table, opts Options, cell int, log logr.Logger) (*image.RGBA, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if cell <= 0 {
		return nil, fmt.Errorf("render: invalid cell size %d", cell)
	}

	thumbs := make([]*image.RGBA, len(t))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, bb := range t {
		i, bb := i, bb
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := opts
			o.Origin = board.Square(i)
			img, err := Rasterize(bb, o, cell*2)
			if err != nil {
				return fmt.Errorf("square %s: %w", board.Square(i), err)
			}
			thumbs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	side := cell * board.Size
	sheet := image.NewRGBA(image.Rect(0, 0, side, side))
	for i, img := range thumbs {
		sq := board.Square(i)
		x, y := sq.File()*cell, (board.Size-1-sq.Rank())*cell
		draw.CatmullRom.Scale(sheet, image.Rect(x, y, x+cell, y+cell), img, img.Bounds(), draw.Over, nil)
	}
	log.V(1).Info("rendered atlas", "cells", len(thumbs), "side", side)

	return sheet, nil
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
