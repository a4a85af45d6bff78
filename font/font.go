// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package font provides fixed-pitch bitmap fonts for the fb renderer.
//
// A Font is a table of row-packed glyphs for the printable ASCII range.
// Each glyph row occupies RowBytes bytes, most significant bit first and
// left aligned, so a 7 pixel wide row uses the top 7 bits of one byte.
// Built-in fonts are rasterized on first use from Go Mono and from
// basicfont; FromFace builds a table from any font.Face.
package font

import (
	"errors"
	"fmt"
)

// Character code range covered by every font table.
const (
	First     = 0x20
	Last      = 0x7E
	NumGlyphs = Last - First + 1
)

// MaxWidth is the widest glyph a table can hold (three bytes per row).
const MaxWidth = 24

// ErrInvalidFont is returned for fonts with bad dimensions or a short table.
var ErrInvalidFont = errors.New("font: invalid font")

// Font is a fixed-pitch bitmap font.
//
// Table holds NumGlyphs glyphs for codes First..Last, each Height rows of
// RowBytes bytes. Fonts are referenced by renderers and never copied.
type Font struct {
	Name   string
	Width  int
	Height int
	Table  []byte
}

// RowBytes returns the number of bytes per glyph row.
func (f *Font) RowBytes() int {
	return (f.Width + 7) / 8
}

// GlyphSize returns the number of bytes per glyph.
func (f *Font) GlyphSize() int {
	return f.Height * f.RowBytes()
}

// Glyph returns the bitmap of code. Codes outside First..Last map to '?'.
func (f *Font) Glyph(code byte) []byte {
	if code < First || code > Last {
		code = '?'
	}
	n := f.GlyphSize()
	off := int(code-First) * n
	return f.Table[off : off+n : off+n]
}

// Validate checks the font dimensions against its table.
func (f *Font) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil font", ErrInvalidFont)
	}
	if f.Width < 1 || f.Width > MaxWidth {
		return fmt.Errorf("%w: %s: width %d out of range [1, %d]", ErrInvalidFont, f.Name, f.Width, MaxWidth)
	}
	if f.Height < 1 {
		return fmt.Errorf("%w: %s: height %d", ErrInvalidFont, f.Name, f.Height)
	}
	if need := NumGlyphs * f.GlyphSize(); len(f.Table) < need {
		return fmt.Errorf("%w: %s: table has %d bytes, need %d", ErrInvalidFont, f.Name, len(f.Table), need)
	}
	return nil
}

// String returns a description such as "Font12 (7x12)".
func (f *Font) String() string {
	return fmt.Sprintf("%s (%dx%d)", f.Name, f.Width, f.Height)
}
