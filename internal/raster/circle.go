// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Circle strokes a circle of radius r centered at (cx, cy) with the
// midpoint algorithm. One octant is walked and mirrored into all eight.
// A radius of zero plots the center; a negative radius draws nothing.
func Circle(b Blitter, cx, cy, r int) {
	if r < 0 {
		return
	}
	d := 3 - 2*r
	x, y := 0, r
	for x <= y {
		b.BlitPixel(cx+x, cy-y)
		b.BlitPixel(cx-x, cy-y)
		b.BlitPixel(cx+y, cy-x)
		b.BlitPixel(cx-y, cy-x)
		b.BlitPixel(cx+x, cy+y)
		b.BlitPixel(cx-x, cy+y)
		b.BlitPixel(cx+y, cy+x)
		b.BlitPixel(cx-y, cy+x)
		d, y = circleStep(d, x, y)
		x++
	}
}

// FillCircle fills a circle of radius r centered at (cx, cy).
//
// Each step emits spans between the mirrored X extents of the four
// scanlines it touches. The spans stop one pixel short on the right, so
// the outline is stroked on top to give a clean, symmetric edge.
func FillCircle(b Blitter, cx, cy, r int) {
	if r < 0 {
		return
	}
	d := 3 - 2*r
	x, y := 0, r
	for x <= y {
		if y > 0 {
			b.BlitH(cx-y, cy+x, 2*y)
			b.BlitH(cx-y, cy-x, 2*y)
		}
		if x > 0 {
			b.BlitH(cx-x, cy-y, 2*x)
			b.BlitH(cx-x, cy+y, 2*x)
		}
		d, y = circleStep(d, x, y)
		x++
	}
	Circle(b, cx, cy, r)
}

// circleStep advances the decision variable for the step from column x.
func circleStep(d, x, y int) (int, int) {
	if d < 0 {
		return d + 4*x + 6, y
	}
	return d + 4*(x-y) + 10, y - 1
}
