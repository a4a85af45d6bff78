// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Go Mono advances 0.6 em per glyph; 1.2 em leaves room for the
// ascent and descent.
const (
	monoAdvance = 0.6
	monoLine    = 1.2
)

var parseMono = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// mono returns a lazily built Go Mono font of the given cell size.
func mono(name string, width, height int) func() *Font {
	return sync.OnceValue(func() *Font {
		otf, err := parseMono()
		if err != nil {
			panic("font: parse gomono: " + err.Error())
		}
		size := min(float64(width)/monoAdvance, float64(height)/monoLine)
		face, err := opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: xfont.HintingFull,
		})
		if err != nil {
			panic("font: " + name + ": " + err.Error())
		}
		defer face.Close()
		f, err := FromFace(name, face, width, height)
		if err != nil {
			panic(err)
		}
		return f
	})
}

// Built-in fonts. Each call returns the same *Font.
var (
	Font8  = mono("Font8", 5, 8)
	Font12 = mono("Font12", 7, 12)
	Font16 = mono("Font16", 11, 16)
	Font20 = mono("Font20", 14, 20)
	Font24 = mono("Font24", 17, 24)
)

// Basic7x13 returns the 7x13 font from basicfont.
var Basic7x13 = sync.OnceValue(func() *Font {
	f, err := FromFace("Basic7x13", basicfont.Face7x13, 7, 13)
	if err != nil {
		panic(err)
	}
	return f
})

// ByName returns the built-in font for a short name
// ("8", "12", "16", "20", "24" or "basic").
func ByName(name string) (*Font, bool) {
	switch name {
	case "8":
		return Font8(), true
	case "12":
		return Font12(), true
	case "16":
		return Font16(), true
	case "20":
		return Font20(), true
	case "24":
		return Font24(), true
	case "basic":
		return Basic7x13(), true
	}
	return nil, false
}
