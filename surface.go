package fb

// Surface is a pixel sink: a width x height grid of pixels stored in a
// native Format. The renderer only writes through this interface.
//
// Coordinates outside [0, Width) x [0, Height) are never passed by the
// Renderer; implementations may ignore or reject them.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the native pixel format.
	Format() Format

	// SetPixel writes one pixel.
	SetPixel(x, y int, p Pixel)

	// Fill writes p to every pixel in row-major order.
	Fill(p Pixel)
}

// PixelReader is implemented by surfaces that can be read back.
type PixelReader interface {
	// PixelAt returns the native pixel at (x, y).
	PixelAt(x, y int) Pixel
}

// SpanWriter is implemented by surfaces with a fast path for horizontal
// runs. The Renderer uses it for every span it emits.
type SpanWriter interface {
	// SetSpan writes n pixels of value p starting at (x, y) going right.
	SetSpan(x, y, n int, p Pixel)
}
