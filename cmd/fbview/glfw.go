package main

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// size is a framebuffer size in pixels.
type size struct {
	X, Y int
}

// glfwApp is driven by withGL once per frame.
type glfwApp interface {
	Init() error
	IsRunning() bool
	OnKey(key glfw.Key, action glfw.Action)
	OnFramebufferSize(width, height int)
	Render() error
	Update(dt float64) error
	Close() error
}

// withGL opens a width x height OpenGL ES 2 window and runs app until it
// stops, pacing frames to fps.
func withGL(title string, width, height int, fps float64, app glfwApp) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()

	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		//nolint:gosec // G115: window sizes fit in int32
		gl.Viewport(0, 0, int32(width), int32(height))
		app.OnFramebufferSize(width, height)
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, action)
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	glfw.SwapInterval(1)

	fbw, fbh := window.GetFramebufferSize()
	framebufferSizeCallback(window, fbw, fbh)
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()

	frameSeconds := 1.0 / fps
	last := glfw.GetTime()
	for app.IsRunning() && !window.ShouldClose() {
		start := glfw.GetTime()
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := app.Render(); err != nil {
			return err
		}
		window.SwapBuffers()

		if elapsed := glfw.GetTime() - start; frameSeconds > elapsed {
			glfw.WaitEventsTimeout(frameSeconds - elapsed)
		} else {
			glfw.PollEvents()
		}
		now := glfw.GetTime()
		if err := app.Update(now - last); err != nil {
			return err
		}
		last = now
	}
	return nil
}
