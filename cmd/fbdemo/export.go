package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/fb"
	icolor "github.com/gogpu/fb/internal/color"
	"github.com/gogpu/fb/internal/scene3d"
)

// frameDelay is the GIF frame delay in 100ths of a second.
const frameDelay = 4

// saveImage writes img in the format implied by the file extension.
func saveImage(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".png":
			return png.Encode(w, img)
		case ".bmp":
			return bmp.Encode(w, img)
		case ".gif":
			return gif.Encode(w, toPaletted(img), nil)
		default:
			return fmt.Errorf("unsupported output extension %q", ext)
		}
	})
}

// saveAnimation renders frames of s, one full turn in total, and writes
// them as an animated GIF.
func saveAnimation(path string, frames int, surface *fb.Framebuffer, r *fb.Renderer, s *scene3d.Scene) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".gif" {
		return fmt.Errorf("animations need a .gif output, got %q", ext)
	}

	anim := &gif.GIF{}
	for i := range frames {
		angle := float32(i) / float32(frames) * 2 * 3.14159265
		r.Clear(fb.Black)
		st := s.Render(r, angle)
		r.SetTextColor(fb.White)
		r.DrawStringAtLine(0, st.String())

		anim.Image = append(anim.Image, toPaletted(surface))
		anim.Delay = append(anim.Delay, frameDelay)
		fb.Logger().Debug("fbdemo: frame rendered", "frame", i, "stats", st.String())
	}
	return writeFile(path, func(w io.Writer) error {
		return gif.EncodeAll(w, anim)
	})
}

// palette332 is the RGB332 display palette; every fb color quantizes to it
// without loss of what an 8-bit panel can show.
var palette332 = func() color.Palette {
	p := make(color.Palette, len(icolor.DefaultPalette))
	for i, c := range icolor.DefaultPalette {
		p[i] = color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
	}
	return p
}()

func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, palette332)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // G304: output path comes from the command line
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
