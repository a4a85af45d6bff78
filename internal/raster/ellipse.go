// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Ellipse strokes an axis-aligned ellipse with radii rx, ry centered at
// (cx, cy).
//
// The walk is a midpoint circle of radius max(rx, ry) in normalized
// coordinates; the minor axis is scaled by the axis ratio, the only
// floating point in the algorithm. One quadrant is walked and mirrored into
// four. A zero radius degenerates to a line through the center; negative
// radii draw nothing.
func Ellipse(b Blitter, cx, cy, rx, ry int) {
	if degenerateEllipse(b, cx, cy, rx, ry) {
		return
	}
	walkEllipse(rx, ry, func(x, y int) {
		b.BlitPixel(cx-x, cy+y)
		b.BlitPixel(cx+x, cy+y)
		b.BlitPixel(cx+x, cy-y)
		b.BlitPixel(cx-x, cy-y)
	})
}

// FillEllipse fills an axis-aligned ellipse. Every walked point emits the
// symmetric span through it on both mirrored scanlines.
func FillEllipse(b Blitter, cx, cy, rx, ry int) {
	if degenerateEllipse(b, cx, cy, rx, ry) {
		return
	}
	walkEllipse(rx, ry, func(x, y int) {
		b.BlitH(cx-x, cy+y, 2*x+1)
		b.BlitH(cx-x, cy-y, 2*x+1)
	})
}

// degenerateEllipse handles negative and zero radii. It reports whether
// the ellipse was fully handled.
func degenerateEllipse(b Blitter, cx, cy, rx, ry int) bool {
	switch {
	case rx < 0 || ry < 0:
		return true
	case rx == 0:
		VLine(b, cx, cy-ry, 2*ry+1)
		return true
	case ry == 0:
		b.BlitH(cx-rx, cy, 2*rx+1)
		return true
	}
	return false
}

// walkEllipse calls plot with quadrant offsets (x >= 0, y <= 0) of the
// ellipse outline, from the top of the ellipse down to the horizontal axis.
func walkEllipse(rx, ry int, plot func(x, y int)) {
	r := max(rx, ry)
	sx := float64(rx) / float64(r)
	sy := float64(ry) / float64(r)

	x, y := 0, -r
	e := 2 - 2*r
	for y <= 0 {
		plot(scale(x, sx), -scale(-y, sy))
		e2 := e
		if e2 <= x {
			x++
			e += 2*x + 1
			if -y == x && e2 <= y {
				e2 = 0
			}
		}
		if e2 > y {
			y++
			e += 2*y + 1
		}
	}
}

// scale maps a non-negative circle offset onto the ellipse axis, rounding
// to the nearest pixel.
func scale(v int, k float64) int {
	if k == 1 {
		return v
	}
	return int(float64(v)*k + 0.5)
}
