package fb

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface adapts a draw.Image as an XRGB8888 Surface. It is useful for
// rendering into an *image.RGBA or any other image a caller already owns.
type ImageSurface struct {
	img    draw.Image
	bounds image.Rectangle
}

// NewImageSurface wraps img. Surface coordinate (0, 0) maps to
// img.Bounds().Min.
func NewImageSurface(img draw.Image) (*ImageSurface, error) {
	if img == nil {
		return nil, ErrNilSurface
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrInvalidDimensions
	}
	return &ImageSurface{img: img, bounds: b}, nil
}

// Image returns the wrapped image.
func (s *ImageSurface) Image() draw.Image { return s.img }

// Width returns the image width.
func (s *ImageSurface) Width() int { return s.bounds.Dx() }

// Height returns the image height.
func (s *ImageSurface) Height() int { return s.bounds.Dy() }

// Format returns FormatXRGB8888.
func (s *ImageSurface) Format() Format { return FormatXRGB8888 }

// SetPixel writes p at (x, y). Out-of-range coordinates are ignored.
func (s *ImageSurface) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= s.bounds.Dx() || y < 0 || y >= s.bounds.Dy() {
		return
	}
	s.img.Set(s.bounds.Min.X+x, s.bounds.Min.Y+y, toRGBA(p))
}

// PixelAt returns the pixel at (x, y), or 0 outside the image.
func (s *ImageSurface) PixelAt(x, y int) Pixel {
	if x < 0 || x >= s.bounds.Dx() || y < 0 || y >= s.bounds.Dy() {
		return 0
	}
	return FormatXRGB8888.Encode(FromStdColor(s.img.At(s.bounds.Min.X+x, s.bounds.Min.Y+y)))
}

// Fill writes p to the whole image.
func (s *ImageSurface) Fill(p Pixel) {
	draw.Draw(s.img, s.bounds, image.NewUniform(toRGBA(p)), image.Point{}, draw.Src)
}

func toRGBA(p Pixel) color.RGBA {
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF}
}
