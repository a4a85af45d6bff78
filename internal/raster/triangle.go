// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// FillTriangle fills the triangle (x1, y1), (x2, y2), (x3, y3) with one
// horizontal span per scanline.
//
// Vertices are sorted by Y. The upper part walks edges 1-2 and 1-3 and the
// lower part edges 2-3 and 1-3. Edge crossings come from accumulated
// numerators divided by the edge height, so there is no per-scanline
// multiply. Scanline y2 belongs to the lower part unless the triangle is
// flat-bottomed, which keeps both loops free of division by zero and draws
// every scanline in [y1, y3] exactly once.
func FillTriangle(b Blitter, x1, y1, x2, y2, x3, y3 int) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	if y1 == y3 {
		lo, hi := min(x1, x2, x3), max(x1, x2, x3)
		b.BlitH(lo, y1, hi-lo+1)
		return
	}

	dx12, dy12 := x2-x1, y2-y1
	dx13, dy13 := x3-x1, y3-y1
	dx23, dy23 := x3-x2, y3-y2

	last := y2 - 1
	if y2 == y3 {
		last = y2
	}

	var sa, sb int
	y := y1
	for ; y <= last; y++ {
		a := x1 + sa/dy12
		c := x1 + sb/dy13
		sa += dx12
		sb += dx13
		span(b, a, c, y)
	}

	sa = dx23 * (y - y2)
	sb = dx13 * (y - y1)
	for ; y <= y3; y++ {
		a := x2 + sa/dy23
		c := x1 + sb/dy13
		sa += dx23
		sb += dx13
		span(b, a, c, y)
	}
}

func span(b Blitter, a, c, y int) {
	if a > c {
		a, c = c, a
	}
	b.BlitH(a, y, c-a+1)
}
