package fb

import "image/color"

// Color is an opaque color with 8-bit red, green and blue channels.
// It is the canonical representation callers use; surfaces store colors
// in their native Format.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements the color.Color interface. The alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// FromStdColor converts a standard color.Color to Color, discarding alpha.
// Premultiplied channels are un-premultiplied first.
func FromStdColor(c color.Color) Color {
	if fc, ok := c.(Color); ok {
		return fc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Hex creates a color from a hex string.
// Supports formats "RGB" and "RRGGBB", with an optional leading '#'.
// Malformed strings yield Black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		ok := parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if !ok {
			return Black
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		ok := parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if !ok {
			return Black
		}
	default:
		return Black
	}

	//nolint:gosec // G115: parsed values are at most 0xFF
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex parses hex digits into val and reports whether all were valid.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	Gray    = RGB(128, 128, 128)
	Blue    = RGB(0, 0, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Yellow  = RGB(255, 255, 0)
	White   = RGB(255, 255, 255)
)
