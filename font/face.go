// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// coverageThreshold is the minimum alpha for a pixel to be set.
const coverageThreshold = 0x80

// FromFace rasterizes the printable ASCII range of face into a width x
// height bitmap font. Glyphs are centered horizontally on their advance
// and the face's ascent and descent are centered vertically in the cell.
// Pixels with coverage of at least one half are set.
func FromFace(name string, face xfont.Face, width, height int) (*Font, error) {
	if face == nil {
		return nil, fmt.Errorf("%w: %s: nil face", ErrInvalidFont, name)
	}
	if width < 1 || width > MaxWidth || height < 1 {
		return nil, fmt.Errorf("%w: %s: size %dx%d", ErrInvalidFont, name, width, height)
	}
	f := &Font{Name: name, Width: width, Height: height}
	f.Table = make([]byte, NumGlyphs*f.GlyphSize())

	m := face.Metrics()
	asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := (height-(asc+desc))/2 + asc

	cell := image.NewAlpha(image.Rect(0, 0, width, height))
	d := xfont.Drawer{Dst: cell, Src: image.Opaque, Face: face}
	rb := f.RowBytes()

	for code := First; code <= Last; code++ {
		clear(cell.Pix)

		x := 0
		if adv, ok := face.GlyphAdvance(rune(code)); ok {
			x = max((width-adv.Round())/2, 0)
		}
		d.Dot = fixed.P(x, baseline)
		d.DrawString(string(rune(code)))

		glyph := f.Table[(code-First)*f.GlyphSize():]
		for y := range height {
			row := cell.Pix[y*cell.Stride : y*cell.Stride+width]
			for col, a := range row {
				if a >= coverageThreshold {
					glyph[y*rb+col/8] |= 0x80 >> (col % 8)
				}
			}
		}
	}
	return f, nil
}
