// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestBuiltinFonts(t *testing.T) {
	tests := []struct {
		name   string
		font   func() *Font
		width  int
		height int
	}{
		{"Font8", Font8, 5, 8},
		{"Font12", Font12, 7, 12},
		{"Font16", Font16, 11, 16},
		{"Font20", Font20, 14, 20},
		{"Font24", Font24, 17, 24},
		{"Basic7x13", Basic7x13, 7, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.font()
			if f != tt.font() {
				t.Error("built-in font is not cached")
			}
			if f.Width != tt.width || f.Height != tt.height {
				t.Fatalf("size = %dx%d, want %dx%d", f.Width, f.Height, tt.width, tt.height)
			}
			if err := f.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if got, want := len(f.Table), NumGlyphs*tt.height*f.RowBytes(); got != want {
				t.Errorf("len(Table) = %d, want %d", got, want)
			}
			for i, b := range f.Glyph(' ') {
				if b != 0 {
					t.Fatalf("space glyph byte %d = %#x, want 0", i, b)
				}
			}
			if isBlank(f.Table) {
				t.Error("font table is blank")
			}
		})
	}
}

func TestRowBytes(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3}, {24, 3},
	}
	for _, tt := range tests {
		f := &Font{Width: tt.width}
		if got := f.RowBytes(); got != tt.want {
			t.Errorf("RowBytes(width=%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestGlyphOutOfRange(t *testing.T) {
	f := Font12()
	q := f.Glyph('?')
	for _, code := range []byte{0x00, 0x1F, 0x7F, 0xFF} {
		g := f.Glyph(code)
		if &g[0] != &q[0] {
			t.Errorf("Glyph(%#x) is not the '?' glyph", code)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		font *Font
	}{
		{"nil", nil},
		{"zero width", &Font{Name: "a", Width: 0, Height: 8, Table: make([]byte, NumGlyphs*8)}},
		{"too wide", &Font{Name: "b", Width: 25, Height: 8, Table: make([]byte, NumGlyphs*32)}},
		{"zero height", &Font{Name: "c", Width: 8, Height: 0}},
		{"short table", &Font{Name: "d", Width: 8, Height: 8, Table: make([]byte, NumGlyphs*8-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.font.Validate(); !errors.Is(err, ErrInvalidFont) {
				t.Errorf("Validate() = %v, want ErrInvalidFont", err)
			}
		})
	}

	ok := &Font{Name: "ok", Width: 8, Height: 1, Table: make([]byte, NumGlyphs)}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestFromFaceMatchesSource(t *testing.T) {
	f := Basic7x13()
	face := basicfont.Face7x13

	for _, code := range []byte{'A', 'g', '#', '~'} {
		dr, mask, mp, _, ok := face.Glyph(fixed.P(0, 11), rune(code))
		if !ok {
			t.Fatalf("basicfont has no glyph %q", code)
		}
		g := f.Glyph(code)
		for y := range f.Height {
			for x := range f.Width {
				set := g[y*f.RowBytes()+x/8]&(0x80>>(x%8)) != 0
				want := false
				if x >= dr.Min.X && x < dr.Max.X && y >= dr.Min.Y && y < dr.Max.Y {
					_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
					want = a >= 0x8080
				}
				if set != want {
					t.Errorf("glyph %q pixel (%d,%d) = %v, want %v", code, x, y, set, want)
				}
			}
		}
	}
}

func TestFromFaceErrors(t *testing.T) {
	if _, err := FromFace("nil", nil, 8, 8); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("nil face: err = %v", err)
	}
	if _, err := FromFace("wide", basicfont.Face7x13, 25, 8); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("width 25: err = %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"8", "12", "16", "20", "24", "basic"} {
		if f, ok := ByName(name); !ok || f == nil {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("13"); ok {
		t.Error("ByName(\"13\") found")
	}
}

func isBlank(g []byte) bool {
	for _, b := range g {
		if b != 0 {
			return false
		}
	}
	return true
}
