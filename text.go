package fb

import (
	"fmt"

	"github.com/gogpu/fb/font"
)

// Align selects how DrawString positions a line of text.
type Align int

const (
	// AlignLeft starts the text at x.
	AlignLeft Align = iota

	// AlignCenter centers the text on the surface, shifted right by x.
	AlignCenter

	// AlignRight ends the text at the right edge, shifted left by x.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// DrawChar draws the glyph of code with its top-left corner at (x, y),
// using the text color for set bits and the back color for clear bits.
// Codes the font does not cover are drawn as '?'.
func (r *Renderer) DrawChar(x, y int, code byte) {
	f := r.style.Font
	r.drawGlyph(x, y, f.Width, f.Height, f.RowBytes(), f.Glyph(code))
}

// DrawGlyph draws a caller-supplied glyph in the dimensions of the active
// font. bits holds Height rows of RowBytes bytes each, most significant
// bit first.
func (r *Renderer) DrawGlyph(x, y int, bits []byte) error {
	f := r.style.Font
	if len(bits) < f.GlyphSize() {
		return fmt.Errorf("fb: glyph has %d bytes, font %s needs %d: %w",
			len(bits), f.Name, f.GlyphSize(), font.ErrInvalidFont)
	}
	r.drawGlyph(x, y, f.Width, f.Height, f.RowBytes(), bits)
	return nil
}

func (r *Renderer) drawGlyph(x, y, width, height, rowBytes int, bits []byte) {
	fg, bg := r.style.TextColor, r.style.BackColor
	top := uint32(1) << (8*rowBytes - 1)
	for row := range height {
		line := uint32(0)
		for _, b := range bits[row*rowBytes : (row+1)*rowBytes] {
			line = line<<8 | uint32(b)
		}
		for col := range width {
			p := bg
			if line&(top>>col) != 0 {
				p = fg
			}
			if r.blit.contains(x+col, y+row) {
				r.surface.SetPixel(x+col, y+row, p)
			}
		}
	}
}

// DrawString draws text on one line at row y.
//
// Text is folded to the font's ASCII range first (accents are dropped,
// other characters become '?'). Glyphs are laid out at a pitch of the font
// width. With n glyphs and cols = surface width / font width, the first
// glyph starts at x for AlignLeft, at x + ((cols-n)*width)/2 for
// AlignCenter and at (cols-n)*width - x for AlignRight. Glyphs that would
// start left of the surface are skipped, and drawing stops before the
// first glyph that would not fit entirely inside the surface width.
func (r *Renderer) DrawString(x, y int, text string, align Align) {
	codes := font.Fold(text)
	w := r.style.Font.Width
	cols := r.surface.Width() / w
	n := len(codes)

	col := x
	switch align {
	case AlignCenter:
		col = x + ((cols-n)*w)/2
	case AlignRight:
		col = (cols-n)*w - x
	}

	width := r.surface.Width()
	for _, c := range codes {
		if col+w > width {
			break
		}
		if col >= 0 {
			r.DrawChar(col, y, c)
		}
		col += w
	}
}

// Line returns the y coordinate of text line n in the active font.
func (r *Renderer) Line(n int) int {
	return n * r.style.Font.Height
}

// DrawStringAtLine draws left-aligned text on text line n.
func (r *Renderer) DrawStringAtLine(n int, text string) {
	r.DrawString(0, r.Line(n), text, AlignLeft)
}

// ClearStringLine fills text line n with the back color.
func (r *Renderer) ClearStringLine(n int) {
	r.fillRect(r.with(r.style.BackColor), 0, r.Line(n), r.surface.Width(), r.style.Font.Height)
}
