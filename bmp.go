package fb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/bmp"

	icolor "github.com/gogpu/fb/internal/color"
)

const (
	bmpFileHeaderLen = 14
	bmpInfoHeaderLen = 40

	biRGB       = 0
	biBitfields = 3
)

// DecodeBMP reads a BMP stream into an RGB16Image.
//
// 16-bit bitmaps are read directly: BI_RGB data is x1r5g5b5 and is widened
// to RGB565, BI_BITFIELDS data must use 565 or 555 masks. Rows keep their
// file order, bottom-up unless the height is negative. Other bit depths
// are decoded with golang.org/x/image/bmp and converted, top-down.
func DecodeBMP(r io.Reader) (RGB16Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RGB16Image{}, fmt.Errorf("fb: read bmp: %w", err)
	}
	if len(data) < bmpFileHeaderLen+bmpInfoHeaderLen || data[0] != 'B' || data[1] != 'M' {
		return RGB16Image{}, fmt.Errorf("fb: bmp header: %w", ErrInvalidBitmap)
	}

	le := binary.LittleEndian
	bpp := le.Uint16(data[28:])
	if bpp != 16 {
		return decodeBMPFallback(data)
	}

	offset := int(le.Uint32(data[10:]))
	//nolint:gosec // G115: BMP dimensions are signed 32-bit fields
	width, height := int(int32(le.Uint32(data[18:]))), int(int32(le.Uint32(data[22:])))
	compression := le.Uint32(data[30:])

	order := BottomUp
	if height < 0 {
		height = -height
		order = TopDown
	}
	if width <= 0 || height == 0 {
		return RGB16Image{}, fmt.Errorf("fb: bmp size %dx%d: %w", width, height, ErrInvalidBitmap)
	}

	widen := false
	switch compression {
	case biRGB:
		widen = true
	case biBitfields:
		if len(data) < 66 {
			return RGB16Image{}, fmt.Errorf("fb: bmp masks: %w", ErrInvalidBitmap)
		}
		rm, gm, bm := le.Uint32(data[54:]), le.Uint32(data[58:]), le.Uint32(data[62:])
		switch {
		case rm == 0xF800 && gm == 0x07E0 && bm == 0x001F:
		case rm == 0x7C00 && gm == 0x03E0 && bm == 0x001F:
			widen = true
		default:
			return RGB16Image{}, fmt.Errorf("fb: bmp masks %#x/%#x/%#x: %w", rm, gm, bm, ErrInvalidBitmap)
		}
	default:
		return RGB16Image{}, fmt.Errorf("fb: bmp compression %d: %w", compression, ErrInvalidBitmap)
	}

	stride := (width*2 + 3) &^ 3
	if offset < bmpFileHeaderLen+bmpInfoHeaderLen || offset > len(data) || height > (len(data)-offset)/stride {
		return RGB16Image{}, fmt.Errorf("fb: bmp pixel data truncated: %w", ErrInvalidBitmap)
	}

	img := RGB16Image{Width: width, Height: height, Order: order, Pix: make([]uint16, width*height)}
	for row := range height {
		src := data[offset+row*stride:]
		dst := img.Pix[row*width : (row+1)*width]
		for x := range dst {
			c := le.Uint16(src[2*x:])
			if widen {
				c = icolor.RGB555To565(c)
			}
			dst[x] = c
		}
	}

	Logger().Debug("fb: bmp decoded", "width", width, "height", height, "bpp", bpp, "order", order)
	return img, nil
}

func decodeBMPFallback(data []byte) (RGB16Image, error) {
	cfg, err := bmp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return RGB16Image{}, fmt.Errorf("fb: decode bmp: %w: %w", ErrInvalidBitmap, err)
	}
	// Every supported depth stores at least one byte per pixel.
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Height > len(data)/cfg.Width {
		return RGB16Image{}, fmt.Errorf("fb: bmp size %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidBitmap)
	}
	m, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return RGB16Image{}, fmt.Errorf("fb: decode bmp: %w: %w", ErrInvalidBitmap, err)
	}
	b := m.Bounds()
	img := RGB16Image{Width: b.Dx(), Height: b.Dy(), Order: TopDown, Pix: make([]uint16, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := FromStdColor(m.At(x, y))
			img.Pix[i] = icolor.PackRGB565(c.R, c.G, c.B)
			i++
		}
	}
	Logger().Debug("fb: bmp decoded", "width", img.Width, "height", img.Height, "converted", true)
	return img, nil
}

// DrawBitmap decodes a BMP stream and draws it with its top-left corner
// at (x, y).
func (r *Renderer) DrawBitmap(x, y int, src io.Reader) error {
	img, err := DecodeBMP(src)
	if err != nil {
		Logger().Warn("fb: bitmap rejected", "err", err)
		return err
	}
	return r.DrawRGB16Image(x, y, img)
}
