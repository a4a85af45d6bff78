// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements the integer scan-conversion algorithms behind
// the framebuffer renderer.
//
// Every algorithm writes through a Blitter, which owns the color and the
// destination. Algorithms never clip; the blitter decides what to do with
// coordinates outside its target.
package raster

// Blitter receives the pixels produced by the rasterizers.
type Blitter interface {
	// BlitPixel writes a single pixel.
	BlitPixel(x, y int)

	// BlitH writes a horizontal span covering [x, x+width) at row y.
	// A width of zero or less writes nothing.
	BlitH(x, y, width int)
}

// VLine writes height pixels going down from (x, y).
func VLine(b Blitter, x, y, height int) {
	for i := range max(height, 0) {
		b.BlitPixel(x, y+i)
	}
}

// Point is an integer device coordinate.
type Point struct {
	X, Y int
}
