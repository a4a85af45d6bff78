package fb

import "github.com/gogpu/fb/internal/raster"

// Point is an integer device coordinate. Ordered slices of points form
// polylines and polygons.
type Point = raster.Point

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}
