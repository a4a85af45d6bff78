// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// FillPolygon fills a polygon by fanning triangles around the center of its
// bounding box, one triangle per edge including the closing edge.
//
// The bounding-box center is not the area centroid. The result is exact
// only for polygons that are star-shaped with respect to that center, which
// covers every convex polygon; a concave polygon whose center falls outside
// the shape is filled incorrectly. Fewer than two points draw nothing.
func FillPolygon(b Blitter, pts []Point) {
	if len(pts) < 2 {
		return
	}
	c := BoundsCenter(pts)
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		FillTriangle(b, p.X, p.Y, q.X, q.Y, c.X, c.Y)
	}
}

// BoundsCenter returns the center of the bounding box of pts, with
// truncating division. pts must not be empty.
func BoundsCenter(pts []Point) Point {
	left, right := pts[0].X, pts[0].X
	top, bottom := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		left = min(left, p.X)
		right = max(right, p.X)
		top = min(top, p.Y)
		bottom = max(bottom, p.Y)
	}
	return Point{X: (left + right) / 2, Y: (top + bottom) / 2}
}
