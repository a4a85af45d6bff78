// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

// PackRGB565 quantizes an 8-bit RGB triple to RGB565 by truncation.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b&0xF8)>>3
}

// UnpackRGB565 expands an RGB565 value to an 8-bit RGB triple.
func UnpackRGB565(c uint16) (r, g, b uint8) {
	//nolint:gosec // G115: each channel is masked before narrowing
	return Expand5(uint8(c >> 11)), Expand6(uint8(c >> 5 & 0x3F)), Expand5(uint8(c & 0x1F))
}

// PackRGB332 quantizes an 8-bit RGB triple to RGB332 by truncation.
func PackRGB332(r, g, b uint8) uint8 {
	return r&0xE0 | (g&0xE0)>>3 | (b&0xC0)>>6
}

// UnpackRGB332 returns the palette color of an RGB332 index.
func UnpackRGB332(c uint8) (r, g, b uint8) {
	p := DefaultPalette[c]
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGB565To332 keeps the top 3/3/2 bits of each RGB565 channel.
func RGB565To332(c uint16) uint8 {
	return uint8((c&0xE000)>>8 | (c&0x0700)>>6 | (c&0x0018)>>3)
}

// RGB332To565 places the RGB332 bits at the top of each RGB565 channel.
// The freed low bits stay zero.
func RGB332To565(c uint8) uint16 {
	v := uint16(c)
	return (v&0xE0)<<8 | (v&0x1C)<<6 | (v&0x3)<<3
}

// RGB555To565 widens an x1r5g5b5 value to RGB565, replicating the top
// green bit into the new low bit.
func RGB555To565(c uint16) uint16 {
	r := c >> 10 & 0x1F
	g := c >> 5 & 0x1F
	b := c & 0x1F
	return r<<11 | (g<<1|g>>4)<<5 | b
}
