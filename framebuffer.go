package fb

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is an in-memory Surface backed by a dense byte slice.
//
// Pixels are stored row-major, little-endian, with no padding between
// rows: the pixel at (x, y) starts at byte (y*width + x) * bytesPerPixel.
// Framebuffer also implements image.Image and draw.Image, so it can be
// encoded directly with image/png or golang.org/x/image/bmp.
type Framebuffer struct {
	width  int
	height int
	stride int
	bpp    int
	format Format
	pix    []byte
}

// NewFramebuffer allocates a zeroed framebuffer.
func NewFramebuffer(width, height int, format Format) (*Framebuffer, error) {
	if err := checkLayout(width, height, format); err != nil {
		return nil, err
	}
	bpp := format.BytesPerPixel()
	return &Framebuffer{
		width:  width,
		height: height,
		stride: width * bpp,
		bpp:    bpp,
		format: format,
		pix:    make([]byte, width*height*bpp),
	}, nil
}

// FramebufferFromRaw wraps an existing pixel store without copying it,
// for example a memory-mapped display buffer. pix must hold at least
// width*height pixels; extra bytes are left untouched.
func FramebufferFromRaw(pix []byte, width, height int, format Format) (*Framebuffer, error) {
	if err := checkLayout(width, height, format); err != nil {
		return nil, err
	}
	bpp := format.BytesPerPixel()
	need := width * height * bpp
	if len(pix) < need {
		return nil, fmt.Errorf("fb: raw buffer has %d bytes, need %d: %w", len(pix), need, ErrDataTooSmall)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		stride: width * bpp,
		bpp:    bpp,
		format: format,
		pix:    pix[:need:need],
	}, nil
}

func checkLayout(width, height int, format Format) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("fb: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if !format.IsValid() {
		return fmt.Errorf("fb: format %d: %w", format, ErrInvalidFormat)
	}
	return nil
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Format returns the native pixel format.
func (f *Framebuffer) Format() Format { return f.format }

// Stride returns the number of bytes per row.
func (f *Framebuffer) Stride() int { return f.stride }

// Pix returns the backing pixel store, for uploads to a display or texture.
func (f *Framebuffer) Pix() []byte { return f.pix }

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func (f *Framebuffer) offset(x, y int) int {
	return y*f.stride + x*f.bpp
}

func (f *Framebuffer) store(i int, p Pixel) {
	switch f.bpp {
	case 1:
		f.pix[i] = byte(p)
	case 2:
		//nolint:gosec // G115: 16-bit formats only use the low half
		binary.LittleEndian.PutUint16(f.pix[i:], uint16(p))
	case 3:
		f.pix[i] = byte(p)
		f.pix[i+1] = byte(p >> 8)
		f.pix[i+2] = byte(p >> 16)
	default:
		binary.LittleEndian.PutUint32(f.pix[i:], uint32(p))
	}
}

func (f *Framebuffer) load(i int) Pixel {
	switch f.bpp {
	case 1:
		return Pixel(f.pix[i])
	case 2:
		return Pixel(binary.LittleEndian.Uint16(f.pix[i:]))
	case 3:
		return Pixel(f.pix[i]) | Pixel(f.pix[i+1])<<8 | Pixel(f.pix[i+2])<<16
	default:
		return Pixel(binary.LittleEndian.Uint32(f.pix[i:]))
	}
}

// SetPixel writes p at (x, y). Out-of-range coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, p Pixel) {
	if boundsCheck && !f.inBounds(x, y) {
		return
	}
	f.store(f.offset(x, y), p)
}

// PixelAt returns the pixel at (x, y), or 0 outside the framebuffer.
func (f *Framebuffer) PixelAt(x, y int) Pixel {
	if boundsCheck && !f.inBounds(x, y) {
		return 0
	}
	return f.load(f.offset(x, y))
}

// SetSpan writes n pixels of value p from (x, y) to the right, clipped to
// the row.
func (f *Framebuffer) SetSpan(x, y, n int, p Pixel) {
	if y < 0 || y >= f.height {
		return
	}
	if x < 0 {
		n += x
		x = 0
	}
	n = min(n, f.width-x)
	if n <= 0 {
		return
	}
	start := f.offset(x, y)
	fillRepeat(f.pix[start:start+n*f.bpp], f.bpp, func(i int) { f.store(start+i, p) })
}

// Fill writes p to every pixel.
func (f *Framebuffer) Fill(p Pixel) {
	fillRepeat(f.pix, f.bpp, func(i int) { f.store(i, p) })
}

// fillRepeat writes the first pixel of buf with storeFirst and replicates
// it over the rest of buf by doubling copies.
func fillRepeat(buf []byte, bpp int, storeFirst func(i int)) {
	if len(buf) < bpp {
		return
	}
	storeFirst(0)
	for n := bpp; n < len(buf); n *= 2 {
		copy(buf[n:], buf[:n])
	}
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return f.format.Model()
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements image.Image. The returned color is a Color.
func (f *Framebuffer) At(x, y int) color.Color {
	if !f.inBounds(x, y) {
		return Color{}
	}
	return f.format.Decode(f.load(f.offset(x, y)))
}

// Set implements draw.Image, quantizing c to the native format.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.store(f.offset(x, y), f.format.Encode(FromStdColor(c)))
}

// SavePNG writes the framebuffer to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // G304: caller-supplied output path
	if err != nil {
		return fmt.Errorf("fb: create %s: %w", path, err)
	}
	if err := png.Encode(file, f); err != nil {
		_ = file.Close()
		return fmt.Errorf("fb: encode %s: %w", path, err)
	}
	return file.Close()
}
