package main

import (
	"fmt"

	"github.com/gogpu/fb"
	"github.com/gogpu/fb/internal/scene3d"
)

// drawShowcase exercises every primitive the renderer offers.
func drawShowcase(r *fb.Renderer) error {
	w, h := r.Width(), r.Height()
	r.Clear(fb.Hex("#102040"))

	r.SetBackColor(fb.Blue)
	r.ClearStringLine(0)
	r.SetTextColor(fb.White)
	r.DrawString(0, 0, "fb showcase", fb.AlignCenter)

	drawLineFan(r, w/6, h/3, min(w, h)/5)
	drawCurves(r, w/2, h/3, min(w, h)/6)
	drawPolygons(r, 5*w/6, h/3, min(w, h)/6)

	if err := drawGradient(r, 4, 2*h/3, w/3, h/4); err != nil {
		return err
	}

	s := scene3d.New(scene3d.Cube())
	inset, err := renderInset(s, w/4, h/3)
	if err != nil {
		return err
	}
	if err := r.DrawRGB16Image(w-w/4-4, 2*h/3-4, inset); err != nil {
		return err
	}

	r.SetBackColor(fb.Black)
	r.SetTextColor(fb.Yellow)
	r.DrawString(4, h-r.Font().Height-2, fmt.Sprintf("%dx%d %v", w, h, r.Surface().Format()), fb.AlignLeft)
	r.DrawString(4, h-r.Font().Height-2, "right", fb.AlignRight)
	return nil
}

func drawLineFan(r *fb.Renderer, cx, cy, radius int) {
	colors := []fb.Color{fb.Red, fb.Green, fb.Cyan, fb.Yellow}
	for i := -radius; i <= radius; i += max(radius/4, 1) {
		r.SetTextColor(colors[(i+radius)%len(colors)])
		r.DrawLine(cx, cy, cx+i, cy-radius)
		r.DrawLine(cx, cy, cx+radius, cy+i)
	}
	r.SetTextColor(fb.White)
	r.DrawHLine(cx-radius, cy+radius+2, 2*radius)
	r.DrawVLine(cx-radius-2, cy-radius, 2*radius)
	r.DrawRect(cx-radius-4, cy-radius-4, 2*radius+8, 2*radius+8)
}

func drawCurves(r *fb.Renderer, cx, cy, radius int) {
	r.SetTextColor(fb.Magenta)
	r.FillCircle(cx, cy, radius/2)
	r.SetTextColor(fb.White)
	r.DrawCircle(cx, cy, radius)
	r.SetTextColor(fb.Green)
	r.FillEllipse(cx, cy+radius+radius/2, radius, radius/3)
	r.SetTextColor(fb.Yellow)
	r.DrawEllipse(cx, cy, radius+4, radius/2)
}

func drawPolygons(r *fb.Renderer, cx, cy, size int) {
	star := make([]fb.Point, 0, 10)
	for i := range 10 {
		d := size
		if i%2 == 1 {
			d = size / 2
		}
		x, y := starPoint(i, d)
		star = append(star, fb.Pt(cx+x, cy+y))
	}
	r.SetTextColor(fb.Cyan)
	r.FillPolygon(star)
	r.SetTextColor(fb.White)
	r.DrawPolygon(star)

	r.SetTextColor(fb.Red)
	r.FillTriangle(cx-size, cy+size+4, cx+size, cy+size+4, cx, cy+2*size)
	r.SetTextColor(fb.Gray)
	r.FillRect(cx-size/4, cy+size+size/2, size/2, size/4)
}

// starPoint returns the i-th of ten points around a star, rounded to
// integers, with the first point straight up.
func starPoint(i, d int) (int, int) {
	// Precomputed sin/cos of multiples of 36 degrees, times 1000.
	sin := [10]int{0, 588, 951, 951, 588, 0, -588, -951, -951, -588}
	cos := [10]int{1000, 809, 309, -309, -809, -1000, -809, -309, 309, 809}
	return d * sin[i] / 1000, -d * cos[i] / 1000
}

// drawGradient blits an RGB565 gradient built bottom-up, as BMP files are.
func drawGradient(r *fb.Renderer, x, y, w, h int) error {
	img := fb.RGB16Image{Width: w, Height: h, Order: fb.BottomUp, Pix: make([]uint16, w*h)}
	for row := range h {
		for col := range w {
			red := uint16(col * 31 / max(w-1, 1))
			green := uint16(row * 63 / max(h-1, 1))
			img.Pix[row*w+col] = red<<11 | green<<5 | 0x10
		}
	}
	return r.DrawRGB16Image(x, y, img)
}

// renderInset renders s into its own small framebuffer and reads it back.
func renderInset(s *scene3d.Scene, w, h int) (fb.RGB16Image, error) {
	surface, err := fb.NewFramebuffer(w, h, fb.FormatRGB565)
	if err != nil {
		return fb.RGB16Image{}, err
	}
	r, err := fb.NewRenderer(surface)
	if err != nil {
		return fb.RGB16Image{}, err
	}
	r.Clear(fb.Gray)
	s.Render(r, 0.6)
	return r.ReadRGB16Image(0, 0, w, h, fb.TopDown)
}
