// Package ui implements an interactive browser for the generated tables
// using Ebitengine.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
	monoFace    *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 18.0
)

func init() {
	initFonts()
}

func initFonts() {
	load := func(name string, ttf []byte, size float64) *text.GoTextFace {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			log.Printf("Failed to load %s font: %v", name, err)
			return nil
		}
		return &text.GoTextFace{Source: src, Size: size}
	}

	regularFace = load("regular", goregular.TTF, defaultFontSize)
	boldFace = load("bold", gobold.TTF, titleFontSize)
	monoFace = load("mono", gomono.TTF, defaultFontSize)
}

// GetFaceWithSize returns a regular font face with a custom size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	if regularFace == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: regularFace.Source,
		Size:   size,
	}
}

// scaled returns face resized for the HiDPI factor.
func scaled(face *text.GoTextFace, scale float64) *text.GoTextFace {
	if face == nil {
		return nil
	}
	return &text.GoTextFace{Source: face.Source, Size: face.Size * scale}
}
