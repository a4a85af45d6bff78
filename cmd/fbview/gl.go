package main

import (
	"errors"
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/fb"
)

const (
	quadVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }` + "\x00"
	quadFragmentShader = `
    precision mediump float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).rgb, 1.0);
    }` + "\x00"
)

type quadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// fullQuad covers clip space. Texture row 0 is the top framebuffer row.
var fullQuad = [6]quadVertex{
	{[2]float32{-1, 1}, [2]float32{0, 0}},
	{[2]float32{-1, -1}, [2]float32{0, 1}},
	{[2]float32{1, -1}, [2]float32{1, 1}},
	{[2]float32{1, -1}, [2]float32{1, 1}},
	{[2]float32{1, 1}, [2]float32{1, 0}},
	{[2]float32{-1, 1}, [2]float32{0, 0}},
}

// screen presents an RGB565 framebuffer as a texture on a scaled quad.
type screen struct {
	program    uint32
	tex        uint32
	aPosition  uint32
	aTexcoord  uint32
	uTransform int32
	uTex       int32
	vertices   [6]quadVertex
}

func newScreen() (*screen, error) {
	p, err := linkProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}
	pos := gl.GetAttribLocation(p, gl.Str("a_position\x00"))
	uv := gl.GetAttribLocation(p, gl.Str("a_texcoord\x00"))
	if pos < 0 || uv < 0 {
		gl.DeleteProgram(p)
		return nil, errors.New("quad attributes not found")
	}
	s := &screen{
		program:    p,
		aPosition:  uint32(pos),
		aTexcoord:  uint32(uv),
		uTransform: gl.GetUniformLocation(p, gl.Str("u_transform\x00")),
		uTex:       gl.GetUniformLocation(p, gl.Str("u_tex\x00")),
		vertices:   fullQuad,
	}

	// Nearest filtering keeps framebuffer pixels sharp when scaled up.
	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return s, nil
}

// present uploads f and draws it scaled by sx, sy in clip space.
func (s *screen) present(f *fb.Framebuffer, sx, sy float32) {
	gl.UseProgram(s.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	// Rows are width*2 bytes, which is only 4-byte aligned for even widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 2)
	// RGB565 is stored little-endian, which matches UNSIGNED_SHORT_5_6_5 on
	// little-endian hosts.
	//nolint:gosec // G115: framebuffer sizes fit in int32
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(f.Width()), int32(f.Height()),
		0, gl.RGB, gl.UNSIGNED_SHORT_5_6_5, gl.Ptr(f.Pix()))
	gl.Uniform1i(s.uTex, 0)

	transform := mgl.Scale3D(sx, sy, 1)
	gl.UniformMatrix4fv(s.uTransform, 1, false, &transform[0])

	stride := int32(unsafe.Sizeof(quadVertex{}))
	gl.EnableVertexAttribArray(s.aPosition)
	gl.VertexAttribPointer(s.aPosition, 2, gl.FLOAT, false, stride, gl.Ptr(&s.vertices[0].position[0]))
	gl.EnableVertexAttribArray(s.aTexcoord)
	gl.VertexAttribPointer(s.aTexcoord, 2, gl.FLOAT, false, stride, gl.Ptr(&s.vertices[0].texcoord[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(s.vertices)))
	gl.DisableVertexAttribArray(s.aPosition)
	gl.DisableVertexAttribArray(s.aTexcoord)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (s *screen) close() {
	gl.DeleteTextures(1, &s.tex)
	gl.DeleteProgram(s.program)
}

// linkProgram builds a program from NUL-terminated shader sources. The
// shaders are released once linked.
func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	p := gl.CreateProgram()
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8, written *int32) { gl.GetProgramInfoLog(p, n, written, buf) })
		gl.DeleteProgram(p)
		return 0, fmt.Errorf("link quad program: %s", msg)
	}
	return p, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	s := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(s, 1, src, nil)
	gl.CompileShader(s)
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8, written *int32) { gl.GetShaderInfoLog(s, n, written, buf) })
		gl.DeleteShader(s)
		return 0, fmt.Errorf("compile shader %#x: %s", kind, msg)
	}
	return s, nil
}

func infoLog(n int32, read func(buf *uint8, written *int32)) string {
	if n <= 0 {
		return "no log"
	}
	buf := make([]uint8, n)
	var written int32
	read(&buf[0], &written)
	return string(buf[:written])
}
