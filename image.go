package fb

import (
	"fmt"
	"image"
)

// RowOrder is the order in which image rows are stored.
type RowOrder uint8

const (
	// TopDown stores the top row first.
	TopDown RowOrder = iota

	// BottomUp stores the bottom row first, as BMP files do.
	BottomUp
)

// String returns "TopDown" or "BottomUp".
func (o RowOrder) String() string {
	if o == BottomUp {
		return "BottomUp"
	}
	return "TopDown"
}

// RGB16Image is a width x height block of RGB565 pixels.
type RGB16Image struct {
	Width  int
	Height int
	Order  RowOrder
	Pix    []uint16
}

// dstRow returns the surface row of source row i drawn at y.
func (img *RGB16Image) dstRow(y, i int) int {
	if img.Order == BottomUp {
		return y + img.Height - 1 - i
	}
	return y + i
}

// DrawRGB16Image copies img into the surface with its top-left corner at
// (x, y), converting pixels to the surface format. Pixels outside the
// surface are clipped. An image with no pixels draws nothing.
func (r *Renderer) DrawRGB16Image(x, y int, img RGB16Image) error {
	if img.Width <= 0 || img.Height <= 0 {
		return nil
	}
	if len(img.Pix)/img.Width < img.Height {
		return fmt.Errorf("fb: %dx%d image has %d pixels: %w", img.Width, img.Height, len(img.Pix), ErrShortImage)
	}
	for i := range img.Height {
		dy := img.dstRow(y, i)
		if dy < 0 || dy >= r.surface.Height() {
			continue
		}
		src := img.Pix[i*img.Width : (i+1)*img.Width]
		for j, c := range src {
			if r.blit.contains(x+j, dy) {
				r.surface.SetPixel(x+j, dy, r.format.FromRGB565(c))
			}
		}
	}
	return nil
}

// ReadRGB16Image reads the w x h rectangle at (x, y) back as RGB565, with
// rows stored in the given order. The surface must implement PixelReader
// and the rectangle must lie inside it.
func (r *Renderer) ReadRGB16Image(x, y, w, h int, order RowOrder) (RGB16Image, error) {
	if r.reader == nil {
		return RGB16Image{}, ErrNotReadable
	}
	rect := image.Rect(x, y, x+w, y+h)
	bounds := image.Rect(0, 0, r.surface.Width(), r.surface.Height())
	if w <= 0 || h <= 0 || !rect.In(bounds) {
		Logger().Warn("fb: readback rejected", "rect", rect, "bounds", bounds)
		return RGB16Image{}, fmt.Errorf("fb: read %v: %w", rect, ErrOutOfBounds)
	}

	img := RGB16Image{Width: w, Height: h, Order: order, Pix: make([]uint16, w*h)}
	for i := range h {
		sy := img.dstRow(y, i)
		dst := img.Pix[i*w : (i+1)*w]
		for j := range dst {
			dst[j] = r.format.ToRGB565(r.reader.PixelAt(x+j, sy))
		}
	}
	return img, nil
}

// DrawImage copies src into the surface with src.Bounds().Min placed at
// (x, y), quantizing colors to the surface format. Alpha is ignored.
func (r *Renderer) DrawImage(x, y int, src image.Image) {
	b := src.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= r.surface.Height() {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if r.blit.contains(dx, dy) {
				r.surface.SetPixel(dx, dy, r.format.Encode(FromStdColor(src.At(sx, sy))))
			}
		}
	}
}

// ToImage converts img to an *image.RGBA.
func (img *RGB16Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := range img.Height {
		y := img.dstRow(0, i)
		for x := range img.Width {
			c := FormatRGB565.Decode(Pixel(img.Pix[i*img.Width+x]))
			o := out.PixOffset(x, y)
			out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3] = c.R, c.G, c.B, 0xFF
		}
	}
	return out
}
