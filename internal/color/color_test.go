// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

import "testing"

func TestDefaultPaletteLevels(t *testing.T) {
	tests := []struct {
		index int
		want  uint32
	}{
		{0x00, 0x000000},
		{0x01, 0x000055},
		{0x03, 0x0000FF},
		{0x04, 0x002400},
		{0x1C, 0x00FF00},
		{0x20, 0x240000},
		{0x6D, 0x6D6D55},
		{0x92, 0x9191AA},
		{0xE0, 0xFF0000},
		{0xFF, 0xFFFFFF},
	}
	for _, tt := range tests {
		if got := DefaultPalette[tt.index]; got != tt.want {
			t.Errorf("DefaultPalette[%#02x] = %#06x, want %#06x", tt.index, got, tt.want)
		}
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for v := range 1 << 16 {
		c := uint16(v)
		r, g, b := UnpackRGB565(c)
		if got := PackRGB565(r, g, b); got != c {
			t.Fatalf("PackRGB565(UnpackRGB565(%#04x)) = %#04x", c, got)
		}
	}
}

func TestRGB332RoundTrip(t *testing.T) {
	for v := range 256 {
		c := uint8(v)
		r, g, b := UnpackRGB332(c)
		if got := PackRGB332(r, g, b); got != c {
			t.Fatalf("PackRGB332(UnpackRGB332(%#02x)) = %#02x", c, got)
		}
	}
}

func TestRGB332To565RoundTrip(t *testing.T) {
	for v := range 256 {
		c := uint8(v)
		if got := RGB565To332(RGB332To565(c)); got != c {
			t.Errorf("RGB565To332(RGB332To565(%#02x)) = %#02x", c, got)
		}
	}
}

func TestRGB565To332MatchesPack(t *testing.T) {
	// Dropping bits from 565 must agree with quantizing the 565 color's
	// top bits directly.
	for _, c := range []uint16{0x0000, 0xFFFF, 0xF800, 0x07E0, 0x001F, 0x8410, 0x1234} {
		r, g, b := uint8(c>>8)&0xF8, uint8(c>>3)&0xFC, uint8(c<<3)
		if got, want := RGB565To332(c), PackRGB332(r, g, b); got != want {
			t.Errorf("RGB565To332(%#04x) = %#02x, want %#02x", c, got, want)
		}
	}
}

func TestRGB555To565(t *testing.T) {
	tests := []struct {
		in, want uint16
	}{
		{0x0000, 0x0000},
		{0x7FFF, 0xFFFF},
		{0x7C00, 0xF800},
		{0x03E0, 0x07E0},
		{0x001F, 0x001F},
	}
	for _, tt := range tests {
		if got := RGB555To565(tt.in); got != tt.want {
			t.Errorf("RGB555To565(%#04x) = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}
}

func TestExpandEndpoints(t *testing.T) {
	if Expand5(0) != 0 || Expand5(31) != 255 {
		t.Errorf("Expand5 endpoints = %d, %d", Expand5(0), Expand5(31))
	}
	if Expand6(0) != 0 || Expand6(63) != 255 {
		t.Errorf("Expand6 endpoints = %d, %d", Expand6(0), Expand6(63))
	}
	if Expand3(7) != 255 || Expand2(3) != 255 {
		t.Errorf("Expand3(7) = %d, Expand2(3) = %d", Expand3(7), Expand2(3))
	}
}
