package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/fb"
	"github.com/gogpu/fb/internal/scene3d"
)

// viewer renders the scene into an RGB565 framebuffer on the CPU and
// shows it as a texture on a letterboxed quad.
type viewer struct {
	surface *fb.Framebuffer
	r       *fb.Renderer
	scene   *scene3d.Scene

	angle   float32
	speed   float32
	paused  bool
	running bool
	stats   scene3d.Stats
	window  size

	screen *screen
}

func newViewer(surface *fb.Framebuffer, r *fb.Renderer, scene *scene3d.Scene) *viewer {
	return &viewer{
		surface: surface,
		r:       r,
		scene:   scene,
		speed:   1,
		running: true,
	}
}

func (v *viewer) Init() error {
	s, err := newScreen()
	if err != nil {
		return err
	}
	v.screen = s
	fb.Logger().Info("fbview: GL ready",
		"width", v.surface.Width(), "height", v.surface.Height(), "mesh", v.scene.Mesh.Name)
	return nil
}

func (v *viewer) IsRunning() bool { return v.running }

func (v *viewer) OnKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		v.running = false
	case glfw.KeySpace:
		v.paused = !v.paused
	case glfw.KeyO:
		v.scene.Outline = !v.scene.Outline
	case glfw.KeyEqual, glfw.KeyKPAdd:
		v.speed *= 1.5
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		v.speed /= 1.5
	}
}

func (v *viewer) OnFramebufferSize(width, height int) {
	v.window = size{X: width, Y: height}
}

func (v *viewer) Update(dt float64) error {
	if !v.paused {
		v.angle += float32(dt) * v.speed
	}
	return nil
}

// draw renders one frame of the scene into the framebuffer.
func (v *viewer) draw() {
	r := v.r
	r.Clear(fb.Black)
	v.stats = v.scene.Render(r, v.angle)

	r.SetBackColor(fb.Black)
	r.SetTextColor(fb.White)
	r.DrawStringAtLine(0, v.stats.String())
	if v.paused {
		r.SetTextColor(fb.Yellow)
		r.DrawString(0, r.Height()-r.Font().Height, "paused", fb.AlignRight)
	}
}

func (v *viewer) Render() error {
	v.draw()
	sx, sy := letterbox(v.surface.Width(), v.surface.Height(), v.window.X, v.window.Y)
	v.screen.present(v.surface, sx, sy)
	return nil
}

func (v *viewer) Close() error {
	if v.screen != nil {
		v.screen.close()
	}
	fb.Logger().Debug("fbview: closed", "angle", v.angle, "last", v.stats.String())
	return nil
}

// letterbox returns the clip-space scale that fits a fw x fh image into a
// ww x wh window without distorting it.
func letterbox(fw, fh, ww, wh int) (float32, float32) {
	if fw <= 0 || fh <= 0 || ww <= 0 || wh <= 0 {
		return 1, 1
	}
	img := float32(fw) / float32(fh)
	win := float32(ww) / float32(wh)
	if win > img {
		return img / win, 1
	}
	return 1, win / img
}
