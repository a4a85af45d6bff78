// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package color provides the channel lookup tables behind the framebuffer
// pixel formats.
//
// The tables give O(1) expansion of 2, 3, 5 and 6 bit channels back to
// 8 bits, and hold the default 256 entry palette used by 8-bit RGB332
// surfaces. A display controller programs the same palette into its CLUT,
// so decoding an RGB332 pixel through DefaultPalette yields exactly the
// color that appears on screen.
package color

// DefaultPalette is the 256 entry RGB332 color lookup table as 0xRRGGBB.
// Index bits are rrrgggbb; red and green levels are i*255/7 (truncated),
// blue levels are i*85.
var DefaultPalette [256]uint32

// expand2LUT, expand3LUT, expand5LUT and expand6LUT widen an n-bit channel
// to 8 bits.
var (
	expand2LUT [4]uint8
	expand3LUT [8]uint8
	expand5LUT [32]uint8
	expand6LUT [64]uint8
)

func init() {
	for i := range 4 {
		expand2LUT[i] = uint8(i * 85)
	}
	for i := range 8 {
		expand3LUT[i] = uint8(i * 255 / 7)
	}
	// Bit replication: the top bits fill the freed low bits, so 0 and the
	// channel maximum map to 0x00 and 0xFF.
	for i := range 32 {
		expand5LUT[i] = uint8(i<<3 | i>>2)
	}
	for i := range 64 {
		expand6LUT[i] = uint8(i<<2 | i>>4)
	}

	for i := range 256 {
		r := uint32(expand3LUT[i>>5&0x7])
		g := uint32(expand3LUT[i>>2&0x7])
		b := uint32(expand2LUT[i&0x3])
		DefaultPalette[i] = r<<16 | g<<8 | b
	}
}

// Expand2 widens a 2-bit channel value to 8 bits.
func Expand2(v uint8) uint8 { return expand2LUT[v&0x3] }

// Expand3 widens a 3-bit channel value to 8 bits.
func Expand3(v uint8) uint8 { return expand3LUT[v&0x7] }

// Expand5 widens a 5-bit channel value to 8 bits.
func Expand5(v uint8) uint8 { return expand5LUT[v&0x1F] }

// Expand6 widens a 6-bit channel value to 8 bits.
func Expand6(v uint8) uint8 { return expand6LUT[v&0x3F] }
