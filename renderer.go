package fb

import (
	"fmt"

	"github.com/gogpu/fb/font"
	"github.com/gogpu/fb/internal/raster"
)

// Renderer draws primitives into a Surface using its current Style.
//
// A Renderer borrows its surface and never reallocates it. It is not safe
// for concurrent use; separate renderers over separate surfaces are fully
// independent.
type Renderer struct {
	surface Surface
	format  Format
	reader  PixelReader
	style   Style
	blit    clipBlitter
}

// NewRenderer creates a renderer for s.
// By default text is white on black in font.Font12.
func NewRenderer(s Surface, opts ...RendererOption) (*Renderer, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.font == nil {
		o.font = font.Font12()
	}
	if err := o.font.Validate(); err != nil {
		return nil, fmt.Errorf("fb: renderer font: %w", err)
	}

	format := s.Format()
	r := &Renderer{
		surface: s,
		format:  format,
		style: Style{
			TextColor: format.Encode(o.textColor),
			BackColor: format.Encode(o.backColor),
			Font:      o.font,
		},
	}
	r.reader, _ = s.(PixelReader)
	r.blit = newClipBlitter(s)

	Logger().Debug("fb: renderer created",
		"width", s.Width(), "height", s.Height(), "format", format.String(), "font", o.font.Name)
	return r, nil
}

// Surface returns the surface the renderer draws into.
func (r *Renderer) Surface() Surface { return r.surface }

// Width returns the surface width.
func (r *Renderer) Width() int { return r.surface.Width() }

// Height returns the surface height.
func (r *Renderer) Height() int { return r.surface.Height() }

// Style returns a copy of the current drawing state.
func (r *Renderer) Style() Style { return r.style }

// SetStyle replaces the drawing state. The font must be valid.
func (r *Renderer) SetStyle(s Style) error {
	if s.Font == nil {
		return ErrNilFont
	}
	if err := s.Font.Validate(); err != nil {
		return fmt.Errorf("fb: set style: %w", err)
	}
	r.style = s
	return nil
}

// SetTextColor sets the color used by lines, shapes and glyph foregrounds.
func (r *Renderer) SetTextColor(c Color) { r.style.TextColor = r.format.Encode(c) }

// SetBackColor sets the color used behind glyphs.
func (r *Renderer) SetBackColor(c Color) { r.style.BackColor = r.format.Encode(c) }

// TextColor returns the text color as displayed by the surface format.
func (r *Renderer) TextColor() Color { return r.format.Decode(r.style.TextColor) }

// BackColor returns the back color as displayed by the surface format.
func (r *Renderer) BackColor() Color { return r.format.Decode(r.style.BackColor) }

// SetFont selects the active font.
func (r *Renderer) SetFont(f *font.Font) error {
	if f == nil {
		return ErrNilFont
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("fb: set font: %w", err)
	}
	r.style.Font = f
	Logger().Debug("fb: font selected", "font", f.Name, "width", f.Width, "height", f.Height)
	return nil
}

// Font returns the active font.
func (r *Renderer) Font() *font.Font { return r.style.Font }

// Clear fills the whole surface with c.
func (r *Renderer) Clear(c Color) {
	r.surface.Fill(r.format.Encode(c))
}

// DrawPixel writes one pixel of color c. Out-of-range pixels are clipped.
func (r *Renderer) DrawPixel(x, y int, c Color) {
	b := r.with(r.format.Encode(c))
	b.BlitPixel(x, y)
}

// ReadPixel returns the displayed color of the pixel at (x, y).
func (r *Renderer) ReadPixel(x, y int) (Color, error) {
	if r.reader == nil {
		return Color{}, ErrNotReadable
	}
	if !r.blit.contains(x, y) {
		return Color{}, fmt.Errorf("fb: read pixel (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return r.format.Decode(r.reader.PixelAt(x, y)), nil
}

// with binds p into the renderer's blitter.
func (r *Renderer) with(p Pixel) raster.Blitter {
	r.blit.pixel = p
	return &r.blit
}

// text binds the text color into the renderer's blitter.
func (r *Renderer) text() raster.Blitter {
	return r.with(r.style.TextColor)
}

// clipBlitter forwards points and spans of one pixel value to a Surface,
// dropping everything outside the surface bounds.
type clipBlitter struct {
	surface Surface
	spans   SpanWriter
	width   int
	height  int
	pixel   Pixel
}

func newClipBlitter(s Surface) clipBlitter {
	b := clipBlitter{surface: s, width: s.Width(), height: s.Height()}
	b.spans, _ = s.(SpanWriter)
	return b
}

func (b *clipBlitter) contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// rows clamps the row range [y0, y1) to the surface. The result is empty
// when y1 <= y0.
func (b *clipBlitter) rows(y0, y1 int) (int, int) {
	return max(y0, 0), min(y1, b.height)
}

// BlitPixel implements raster.Blitter.
func (b *clipBlitter) BlitPixel(x, y int) {
	if b.contains(x, y) {
		b.surface.SetPixel(x, y, b.pixel)
	}
}

// BlitH implements raster.Blitter.
func (b *clipBlitter) BlitH(x, y, width int) {
	if y < 0 || y >= b.height {
		return
	}
	if x < 0 {
		width += x
		x = 0
	}
	width = min(width, b.width-x)
	if width <= 0 {
		return
	}
	if b.spans != nil {
		b.spans.SetSpan(x, y, width, b.pixel)
		return
	}
	for i := range width {
		b.surface.SetPixel(x+i, y, b.pixel)
	}
}
