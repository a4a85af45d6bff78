package fb

import (
	"image/color"

	icolor "github.com/gogpu/fb/internal/color"
)

// Pixel is a color value in a surface's native Format.
type Pixel uint32

// Format is the native pixel encoding of a surface.
type Format uint8

const (
	// FormatRGB565 is 16-bit RGB with 5 bits red, 6 bits green, 5 bits blue.
	FormatRGB565 Format = iota

	// FormatRGB332 is an 8-bit palette index laid out as rrrgggbb and
	// displayed through the default color lookup table.
	FormatRGB332

	// FormatRGB888 is 24-bit packed RGB (3 bytes per pixel).
	FormatRGB888

	// FormatXRGB8888 is 32-bit RGB with an unused top byte.
	FormatXRGB8888

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains metadata about a pixel format.
type formatInfo struct {
	name          string
	bitsPerPixel  int
	bytesPerPixel int
}

var formatInfoTable = [formatCount]formatInfo{
	FormatRGB565:   {name: "RGB565", bitsPerPixel: 16, bytesPerPixel: 2},
	FormatRGB332:   {name: "RGB332", bitsPerPixel: 8, bytesPerPixel: 1},
	FormatRGB888:   {name: "RGB888", bitsPerPixel: 24, bytesPerPixel: 3},
	FormatXRGB8888: {name: "XRGB8888", bitsPerPixel: 32, bytesPerPixel: 4},
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BitsPerPixel returns the number of significant bits per pixel.
func (f Format) BitsPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatInfoTable[f].bitsPerPixel
}

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatInfoTable[f].bytesPerPixel
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].name
}

// Encode quantizes c to the format. Reduced-depth formats truncate the low
// bits of each channel.
func (f Format) Encode(c Color) Pixel {
	switch f {
	case FormatRGB565:
		return Pixel(icolor.PackRGB565(c.R, c.G, c.B))
	case FormatRGB332:
		return Pixel(icolor.PackRGB332(c.R, c.G, c.B))
	case FormatRGB888, FormatXRGB8888:
		return Pixel(c.R)<<16 | Pixel(c.G)<<8 | Pixel(c.B)
	default:
		return 0
	}
}

// Decode converts p to its displayed color.
//
// Decode is the right inverse of Encode: f.Encode(f.Decode(p)) == p for
// every valid native value. The opposite direction loses precision below
// 24 bits; the largest channel error of f.Decode(f.Encode(c)) is 7 (red,
// blue) and 3 (green) for RGB565, and 31 (red, green) and 63 (blue) for
// RGB332.
func (f Format) Decode(p Pixel) Color {
	switch f {
	case FormatRGB565:
		//nolint:gosec // G115: RGB565 pixels fit in 16 bits
		r, g, b := icolor.UnpackRGB565(uint16(p))
		return Color{R: r, G: g, B: b}
	case FormatRGB332:
		//nolint:gosec // G115: RGB332 pixels fit in 8 bits
		r, g, b := icolor.UnpackRGB332(uint8(p))
		return Color{R: r, G: g, B: b}
	case FormatRGB888, FormatXRGB8888:
		return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
	default:
		return Color{}
	}
}

// FromRGB565 converts an RGB565 value to the format.
func (f Format) FromRGB565(c uint16) Pixel {
	switch f {
	case FormatRGB565:
		return Pixel(c)
	case FormatRGB332:
		return Pixel(icolor.RGB565To332(c))
	default:
		r, g, b := icolor.UnpackRGB565(c)
		return f.Encode(Color{R: r, G: g, B: b})
	}
}

// ToRGB565 converts a native pixel to RGB565.
func (f Format) ToRGB565(p Pixel) uint16 {
	switch f {
	case FormatRGB565:
		//nolint:gosec // G115: RGB565 pixels fit in 16 bits
		return uint16(p)
	case FormatRGB332:
		//nolint:gosec // G115: RGB332 pixels fit in 8 bits
		return icolor.RGB332To565(uint8(p))
	default:
		c := f.Decode(p)
		return icolor.PackRGB565(c.R, c.G, c.B)
	}
}

// Model returns a color.Model that quantizes colors to what the format can
// represent.
func (f Format) Model() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return f.Decode(f.Encode(FromStdColor(c)))
	})
}
