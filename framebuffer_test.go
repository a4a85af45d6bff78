package fb

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
)

// Verify at compile time that Framebuffer satisfies the interfaces it is
// used through.
var (
	_ Surface     = (*Framebuffer)(nil)
	_ PixelReader = (*Framebuffer)(nil)
	_ SpanWriter  = (*Framebuffer)(nil)
	_ draw.Image  = (*Framebuffer)(nil)
)

func mustFramebuffer(t *testing.T, w, h int, format Format) *Framebuffer {
	t.Helper()
	f, err := NewFramebuffer(w, h, format)
	if err != nil {
		t.Fatalf("NewFramebuffer(%d, %d, %v) = %v", w, h, format, err)
	}
	return f
}

func TestNewFramebuffer(t *testing.T) {
	for _, format := range allFormats {
		t.Run(format.String(), func(t *testing.T) {
			f := mustFramebuffer(t, 7, 3, format)
			if f.Width() != 7 || f.Height() != 3 || f.Format() != format {
				t.Errorf("got %dx%d %v", f.Width(), f.Height(), f.Format())
			}
			if got, want := len(f.Pix()), 7*3*format.BytesPerPixel(); got != want {
				t.Errorf("len(Pix()) = %d, want %d", got, want)
			}
			if got, want := f.Stride(), 7*format.BytesPerPixel(); got != want {
				t.Errorf("Stride() = %d, want %d", got, want)
			}
		})
	}
}

func TestNewFramebufferErrors(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		format Format
		want   error
	}{
		{"zero width", 0, 10, FormatRGB565, ErrInvalidDimensions},
		{"negative height", 10, -1, FormatRGB565, ErrInvalidDimensions},
		{"unknown format", 10, 10, Format(42), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFramebuffer(tt.w, tt.h, tt.format); !errors.Is(err, tt.want) {
				t.Errorf("NewFramebuffer() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFramebufferFromRaw(t *testing.T) {
	raw := make([]byte, 4*2*2+3)
	f, err := FramebufferFromRaw(raw, 4, 2, FormatRGB565)
	if err != nil {
		t.Fatalf("FramebufferFromRaw() = %v", err)
	}

	f.SetPixel(1, 1, 0xBEEF)
	// Pixel (1, 1) starts at byte (1*4 + 1) * 2, little-endian.
	if raw[10] != 0xEF || raw[11] != 0xBE {
		t.Errorf("raw[10:12] = %#x %#x, want 0xef 0xbe", raw[10], raw[11])
	}

	f.Fill(0xFFFF)
	for i, b := range raw[16:] {
		if b != 0 {
			t.Errorf("byte %d past the framebuffer was written", 16+i)
		}
	}

	if _, err := FramebufferFromRaw(raw[:15], 4, 2, FormatRGB565); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short raw buffer: error = %v, want ErrDataTooSmall", err)
	}
}

func TestFramebufferPixelAccess(t *testing.T) {
	tests := []struct {
		format Format
		p      Pixel
		bytes  []byte
	}{
		{FormatRGB332, 0xA5, []byte{0xA5}},
		{FormatRGB565, 0xBEEF, []byte{0xEF, 0xBE}},
		{FormatRGB888, 0x123456, []byte{0x56, 0x34, 0x12}},
		{FormatXRGB8888, 0x00ABCDEF, []byte{0xEF, 0xCD, 0xAB, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			f := mustFramebuffer(t, 5, 4, tt.format)
			f.SetPixel(3, 2, tt.p)

			if got := f.PixelAt(3, 2); got != tt.p {
				t.Errorf("PixelAt(3, 2) = %#x, want %#x", got, tt.p)
			}
			off := (2*5 + 3) * tt.format.BytesPerPixel()
			if got := f.Pix()[off : off+len(tt.bytes)]; !bytes.Equal(got, tt.bytes) {
				t.Errorf("stored bytes = %#v, want %#v", got, tt.bytes)
			}
			if got := f.PixelAt(2, 2); got != 0 {
				t.Errorf("neighbour PixelAt(2, 2) = %#x, want 0", got)
			}
		})
	}
}

func TestFramebufferOutOfRange(t *testing.T) {
	if !boundsCheck {
		t.Skip("bounds checks compiled out")
	}
	f := mustFramebuffer(t, 4, 3, FormatRGB565)
	for _, pt := range []image.Point{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {100, 100}} {
		f.SetPixel(pt.X, pt.Y, 0xFFFF)
		if got := f.PixelAt(pt.X, pt.Y); got != 0 {
			t.Errorf("PixelAt(%v) = %#x, want 0", pt, got)
		}
	}
	for i, b := range f.Pix() {
		if b != 0 {
			t.Fatalf("byte %d written by an out-of-range SetPixel", i)
		}
	}
}

func TestFramebufferSetSpan(t *testing.T) {
	tests := []struct {
		name    string
		x, y, n int
		want    []int // x coordinates set on row y
	}{
		{"inside", 2, 1, 3, []int{2, 3, 4}},
		{"clipped left", -3, 0, 5, []int{0, 1}},
		{"clipped right", 6, 0, 5, []int{6, 7}},
		{"whole row", -10, 1, 30, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"below", 0, 2, 3, nil},
		{"above", 0, -1, 3, nil},
		{"right of surface", 9, 0, 2, nil},
		{"empty", 3, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFramebuffer(t, 8, 2, FormatRGB888)
			f.SetSpan(tt.x, tt.y, tt.n, 0x010203)

			want := map[image.Point]bool{}
			for _, x := range tt.want {
				want[image.Point{X: x, Y: tt.y}] = true
			}
			for y := range 2 {
				for x := range 8 {
					set := f.PixelAt(x, y) == 0x010203
					if set != want[image.Point{X: x, Y: y}] {
						t.Errorf("pixel (%d,%d) set = %v", x, y, set)
					}
				}
			}
		})
	}
}

func TestFramebufferFill(t *testing.T) {
	for _, format := range allFormats {
		t.Run(format.String(), func(t *testing.T) {
			f := mustFramebuffer(t, 3, 5, format)
			p := format.Encode(RGB(0x12, 0x34, 0x56))
			f.Fill(p)
			for y := range 5 {
				for x := range 3 {
					if got := f.PixelAt(x, y); got != p {
						t.Fatalf("PixelAt(%d,%d) = %#x, want %#x", x, y, got, p)
					}
				}
			}
		})
	}
}

func TestFramebufferImage(t *testing.T) {
	f := mustFramebuffer(t, 3, 2, FormatRGB565)
	f.Set(0, 0, color.RGBA{R: 255, A: 255})
	f.Set(2, 1, color.RGBA{G: 255, B: 255, A: 255})
	f.Set(5, 5, color.White) // ignored

	if got := f.At(0, 0); got != Red {
		t.Errorf("At(0, 0) = %v, want Red", got)
	}
	if got := f.At(2, 1); got != Cyan {
		t.Errorf("At(2, 1) = %v, want Cyan", got)
	}
	if got := f.At(-1, 0); got != (Color{}) {
		t.Errorf("At(-1, 0) = %v, want zero Color", got)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, f); err != nil {
		t.Fatalf("png.Encode() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if got := FromStdColor(img.At(2, 1)); got != Cyan {
		t.Errorf("decoded PNG pixel = %v, want Cyan", got)
	}
}

func TestImageSurface(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 23))
	s, err := NewImageSurface(img)
	if err != nil {
		t.Fatalf("NewImageSurface() = %v", err)
	}
	if s.Width() != 4 || s.Height() != 3 || s.Format() != FormatXRGB8888 {
		t.Fatalf("got %dx%d %v", s.Width(), s.Height(), s.Format())
	}

	s.Fill(0x0000FF)
	s.SetPixel(0, 0, 0xFF0000)
	s.SetPixel(4, 0, 0x00FF00) // ignored

	if got := img.RGBAAt(10, 20); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("RGBAAt(10, 20) = %v", got)
	}
	if got := img.RGBAAt(13, 22); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("RGBAAt(13, 22) = %v", got)
	}
	if got := s.PixelAt(0, 0); got != 0xFF0000 {
		t.Errorf("PixelAt(0, 0) = %#x", got)
	}
	if got := s.PixelAt(4, 0); got != 0 {
		t.Errorf("PixelAt(4, 0) = %#x, want 0", got)
	}

	if _, err := NewImageSurface(nil); !errors.Is(err, ErrNilSurface) {
		t.Errorf("NewImageSurface(nil) error = %v", err)
	}
	if _, err := NewImageSurface(image.NewRGBA(image.Rectangle{})); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty image error = %v", err)
	}
}
