// Package fb is a software rasterizer for in-memory pixel framebuffers.
//
// # Overview
//
// fb draws pixels, lines, rectangles, circles, ellipses, polygons, filled
// triangles, bitmap text and RGB565 images into a Surface. It has no
// anti-aliasing and no blending: every primitive writes opaque pixels in
// the surface's native format. A display layer (a window, a panel driver,
// an image encoder) transfers the framebuffer to the screen afterwards.
//
// # Quick Start
//
//	surface, err := fb.NewFramebuffer(320, 240, fb.FormatRGB565)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := fb.NewRenderer(surface)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r.Clear(fb.Blue)
//	r.SetTextColor(fb.Yellow)
//	r.FillCircle(160, 120, 50)
//	r.DrawString(0, 4, "Hello", fb.AlignCenter)
//
//	surface.SavePNG("hello.png")
//
// # Surfaces and Formats
//
// Framebuffer stores RGB332, RGB565, RGB888 or XRGB8888 pixels in a
// dense byte slice and can wrap memory it does not own. ImageSurface
// renders into any draw.Image. Colors are given as Color values and
// quantized once, when they are selected.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Everything outside the surface is clipped.
//
// # Concurrency
//
// A Renderer is not safe for concurrent use. Renderers over different
// surfaces are independent.
package fb

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
