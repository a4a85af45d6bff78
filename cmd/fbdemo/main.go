// Command fbdemo renders the fb primitive showcase, or an animation of a
// rotating 3D mesh, and saves it as PNG, BMP or animated GIF.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gogpu/fb"
	"github.com/gogpu/fb/font"
	"github.com/gogpu/fb/internal/scene3d"
)

func main() {
	var (
		width    = flag.Int("width", 320, "framebuffer width")
		height   = flag.Int("height", 240, "framebuffer height")
		format   = flag.String("format", "rgb565", "pixel format: rgb332, rgb565, rgb888 or xrgb8888")
		output   = flag.String("output", "demo.png", "output file (.png, .bmp or .gif)")
		frames   = flag.Int("frames", 0, "render this many frames of the 3D scene instead of the showcase")
		fontName = flag.String("font", "12", "font: 8, 12, 16, 20, 24 or basic")
		meshName = flag.String("mesh", "cube", "mesh for -frames: cube, octahedron or torus")
		logLevel = flag.String("log-level", "warn", "log level: debug, info, warn or error")
	)
	flag.Parse()

	logger, err := fb.NewTextLogger(os.Stderr, *logLevel)
	if err != nil {
		log.Fatal(err)
	}
	fb.SetLogger(logger)

	cfg := config{
		width:  *width,
		height: *height,
		output: *output,
		frames: *frames,
	}
	if cfg.format, err = parseFormat(*format); err != nil {
		log.Fatal(err)
	}
	var ok bool
	if cfg.font, ok = font.ByName(*fontName); !ok {
		log.Fatalf("unknown font %q", *fontName)
	}
	if cfg.mesh, ok = scene3d.ByName(*meshName); !ok {
		log.Fatalf("unknown mesh %q", *meshName)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d %v)\n", cfg.output, cfg.width, cfg.height, cfg.format)
}

type config struct {
	width, height int
	format        fb.Format
	output        string
	frames        int
	font          *font.Font
	mesh          scene3d.Mesh
}

func parseFormat(name string) (fb.Format, error) {
	switch strings.ToLower(name) {
	case "rgb332":
		return fb.FormatRGB332, nil
	case "rgb565":
		return fb.FormatRGB565, nil
	case "rgb888":
		return fb.FormatRGB888, nil
	case "xrgb8888":
		return fb.FormatXRGB8888, nil
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

func run(cfg config) error {
	surface, err := fb.NewFramebuffer(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return err
	}
	r, err := fb.NewRenderer(surface, fb.WithFont(cfg.font))
	if err != nil {
		return err
	}

	if cfg.frames > 0 {
		return saveAnimation(cfg.output, cfg.frames, surface, r, scene3d.New(cfg.mesh))
	}

	if err := drawShowcase(r); err != nil {
		return err
	}
	return saveImage(cfg.output, surface)
}
