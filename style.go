package fb

import "github.com/gogpu/fb/font"

// Style is the drawing state shared by all primitives of a Renderer:
// the text (foreground) color, the back (background) color used behind
// glyphs and by ClearStringLine, and the active font.
//
// Colors are stored in the surface's native format.
type Style struct {
	TextColor Pixel
	BackColor Pixel
	Font      *font.Font
}
