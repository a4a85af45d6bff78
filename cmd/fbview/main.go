// Command fbview shows a framebuffer rendered by fb in a window, redrawing
// a rotating 3D mesh every frame and uploading the RGB565 pixels as an
// OpenGL ES texture.
//
// Keys: Escape or Q quits, Space pauses, O toggles outlines, + and -
// change the rotation speed.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/fb"
	"github.com/gogpu/fb/font"
	"github.com/gogpu/fb/internal/scene3d"
)

func main() {
	var (
		width    = flag.Int("width", 320, "framebuffer width")
		height   = flag.Int("height", 240, "framebuffer height")
		scale    = flag.Int("scale", 2, "initial window scale")
		meshName = flag.String("mesh", "cube", "mesh: cube, octahedron or torus")
		fontName = flag.String("font", "8", "font: 8, 12, 16, 20, 24 or basic")
		fps      = flag.Float64("fps", 30, "frames per second")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn or error")
	)
	flag.Parse()

	logger, err := fb.NewTextLogger(os.Stderr, *logLevel)
	if err != nil {
		log.Fatal(err)
	}
	fb.SetLogger(logger)

	mesh, ok := scene3d.ByName(*meshName)
	if !ok {
		log.Fatalf("unknown mesh %q", *meshName)
	}
	f, ok := font.ByName(*fontName)
	if !ok {
		log.Fatalf("unknown font %q", *fontName)
	}
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %v", *fps)
	}

	surface, err := fb.NewFramebuffer(*width, *height, fb.FormatRGB565)
	if err != nil {
		log.Fatal(err)
	}
	r, err := fb.NewRenderer(surface, fb.WithFont(f))
	if err != nil {
		log.Fatal(err)
	}

	v := newViewer(surface, r, scene3d.New(mesh))
	s := max(*scale, 1)
	if err := withGL("fbview", *width*s, *height*s, *fps, v); err != nil {
		log.Fatal(err)
	}
}
