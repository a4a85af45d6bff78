package fb

import "github.com/gogpu/fb/font"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := fb.NewRenderer(surface,
//	    fb.WithFont(font.Font16()),
//	    fb.WithTextColor(fb.Yellow),
//	    fb.WithBackColor(fb.Blue))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	font      *font.Font
	textColor Color
	backColor Color
}

// defaultOptions returns white text on black with Font12.
func defaultOptions() rendererOptions {
	return rendererOptions{
		font:      nil, // Font12 is built lazily if nil
		textColor: White,
		backColor: Black,
	}
}

// WithFont sets the initial font.
func WithFont(f *font.Font) RendererOption {
	return func(o *rendererOptions) {
		o.font = f
	}
}

// WithTextColor sets the initial text color.
func WithTextColor(c Color) RendererOption {
	return func(o *rendererOptions) {
		o.textColor = c
	}
}

// WithBackColor sets the initial back color.
func WithBackColor(c Color) RendererOption {
	return func(o *rendererOptions) {
		o.backColor = c
	}
}
