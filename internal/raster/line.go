// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Line draws the segment (x1, y1)-(x2, y2) with Bresenham's algorithm.
//
// The major axis advances one pixel per step; the minor axis advances when
// the accumulated numerator reaches the major delta. The accumulator starts
// at half the major delta so the minor steps are centered. Exactly
// max(|dx|, |dy|)+1 pixels are written.
//
// Endpoints are ordered so the major-axis coordinate increases, which makes
// the pixel set independent of the order the endpoints are given in.
func Line(b Blitter, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	if (dx >= dy && x2 < x1) || (dx < dy && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	xinc1, xinc2 := sign(x2-x1), sign(x2-x1)
	yinc1, yinc2 := sign(y2-y1), sign(y2-y1)

	var den, num, numadd, numpixels int
	if dx >= dy {
		// At least one x step for every y step.
		xinc1 = 0
		yinc2 = 0
		den = dx
		num = dx / 2
		numadd = dy
		numpixels = dx
	} else {
		xinc2 = 0
		yinc1 = 0
		den = dy
		num = dy / 2
		numadd = dx
		numpixels = dy
	}

	x, y := x1, y1
	for range numpixels + 1 {
		b.BlitPixel(x, y)
		num += numadd
		if num >= den {
			num -= den
			x += xinc1
			y += yinc1
		}
		x += xinc2
		y += yinc2
	}
}

// Polyline joins consecutive points with lines. When closed is set the last
// point is joined back to the first. Fewer than two points draw nothing.
func Polyline(b Blitter, pts []Point, closed bool) {
	if len(pts) < 2 {
		return
	}
	if closed {
		last := pts[len(pts)-1]
		Line(b, pts[0].X, pts[0].Y, last.X, last.Y)
	}
	for i := 1; i < len(pts); i++ {
		Line(b, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns 1 for v >= 0 and -1 otherwise.
func sign(v int) int {
	if v >= 0 {
		return 1
	}
	return -1
}
