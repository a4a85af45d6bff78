package fb

import "github.com/gogpu/fb/internal/raster"

// All shapes are drawn in the text color and clipped to the surface.

// DrawHLine draws length pixels from (x, y) to the right.
// A non-positive length draws nothing.
func (r *Renderer) DrawHLine(x, y, length int) {
	if length <= 0 {
		return
	}
	r.text().BlitH(x, y, length)
}

// DrawVLine draws length pixels from (x, y) downwards.
// A non-positive length draws nothing.
func (r *Renderer) DrawVLine(x, y, length int) {
	r.vline(r.text(), x, y, length)
}

// vline draws the visible rows of a vertical run only.
func (r *Renderer) vline(b raster.Blitter, x, y, length int) {
	if length <= 0 || x < 0 || x >= r.blit.width {
		return
	}
	y0, y1 := r.blit.rows(y, y+length)
	raster.VLine(b, x, y0, y1-y0)
}

// DrawLine draws a one pixel wide line from (x1, y1) to (x2, y2), both
// endpoints included. The same pixels are drawn in either direction.
func (r *Renderer) DrawLine(x1, y1, x2, y2 int) {
	raster.Line(r.text(), x1, y1, x2, y2)
}

// DrawRect draws the outline of the w x h rectangle whose top-left corner
// is (x, y). Negative extents grow the rectangle up or left of (x, y).
func (r *Renderer) DrawRect(x, y, w, h int) {
	x, y, w, h = canonRect(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	b := r.text()
	b.BlitH(x, y, w)
	b.BlitH(x, y+h-1, w)
	r.vline(b, x, y, h)
	r.vline(b, x+w-1, y, h)
}

// FillRect fills the w x h rectangle whose top-left corner is (x, y).
func (r *Renderer) FillRect(x, y, w, h int) {
	r.fillRect(r.text(), x, y, w, h)
}

func (r *Renderer) fillRect(b raster.Blitter, x, y, w, h int) {
	x, y, w, h = canonRect(x, y, w, h)
	if w == 0 {
		return
	}
	y0, y1 := r.blit.rows(y, y+h)
	for row := y0; row < y1; row++ {
		b.BlitH(x, row, w)
	}
}

func canonRect(x, y, w, h int) (int, int, int, int) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

// DrawCircle draws the outline of a circle of radius r centered at
// (cx, cy). A zero radius draws the center; a negative radius nothing.
func (r *Renderer) DrawCircle(cx, cy, radius int) {
	raster.Circle(r.text(), cx, cy, radius)
}

// FillCircle fills a circle of radius r centered at (cx, cy).
func (r *Renderer) FillCircle(cx, cy, radius int) {
	raster.FillCircle(r.text(), cx, cy, radius)
}

// DrawEllipse draws the outline of an axis-aligned ellipse with radii rx
// and ry. A zero radius draws a line through the center.
func (r *Renderer) DrawEllipse(cx, cy, rx, ry int) {
	raster.Ellipse(r.text(), cx, cy, rx, ry)
}

// FillEllipse fills an axis-aligned ellipse with radii rx and ry.
func (r *Renderer) FillEllipse(cx, cy, rx, ry int) {
	raster.FillEllipse(r.text(), cx, cy, rx, ry)
}

// DrawPolyline joins consecutive points with lines.
func (r *Renderer) DrawPolyline(pts []Point) {
	raster.Polyline(r.text(), pts, false)
}

// DrawPolygon draws a closed outline through pts. Fewer than two points
// draw nothing.
func (r *Renderer) DrawPolygon(pts []Point) {
	raster.Polyline(r.text(), pts, true)
}

// FillPolygon fills the polygon through pts as a fan of triangles around
// the center of its bounding box, one triangle per edge.
//
// The result is exact only for polygons that are star-shaped with respect
// to that center, which includes every convex polygon. Concave shapes may
// get extra pixels between the center and their notches.
func (r *Renderer) FillPolygon(pts []Point) {
	raster.FillPolygon(r.text(), pts)
}

// FillTriangle fills the triangle with the given vertices, one span per
// scanline.
func (r *Renderer) FillTriangle(x1, y1, x2, y2, x3, y3 int) {
	raster.FillTriangle(r.text(), x1, y1, x2, y2, x3, y3)
}
