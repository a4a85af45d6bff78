// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene3d

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/fb"
)

const (
	ambient = 0.25
	diffuse = 1 - ambient
)

// Scene places a mesh in front of a perspective camera at the origin
// looking down -Z.
type Scene struct {
	Mesh Mesh

	// Distance from the camera to the mesh center.
	Distance float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Light points from the surface towards the light, in view space.
	Light mgl32.Vec3

	// Outline draws the edges of every visible face in the back color.
	Outline bool
}

// New returns a scene with the camera 5 units from m and a light above
// and behind the viewer.
func New(m Mesh) *Scene {
	return &Scene{
		Mesh:     m,
		Distance: 5,
		FOV:      45,
		Light:    mgl32.Vec3{0.3, 0.5, 1}.Normalize(),
	}
}

// Stats reports what one Render call did.
type Stats struct {
	Faces int // faces in the mesh
	Drawn int // faces that survived culling
}

// String returns e.g. "12 faces, 2 drawn".
func (s Stats) String() string {
	return fmt.Sprintf("%d faces, %d drawn", s.Faces, s.Drawn)
}

// Model returns the model-view transform for a rotation angle in radians.
func (s *Scene) Model(angle float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -s.Distance).
		Mul4(mgl32.HomogRotate3DY(angle)).
		Mul4(mgl32.HomogRotate3DX(angle * 0.7))
}

type face struct {
	index int
	depth float32
	pts   [3]fb.Point
	shade float32
}

// Render draws the mesh rotated by angle into r, leaving the renderer's
// text color changed.
func (s *Scene) Render(r *fb.Renderer, angle float32) Stats {
	w, h := float32(r.Width()), float32(r.Height())
	model := s.Model(angle)
	proj := mgl32.Perspective(mgl32.DegToRad(s.FOV), w/h, 0.1, 100)

	view := make([]mgl32.Vec3, len(s.Mesh.Vertices))
	ndc := make([]mgl32.Vec2, len(s.Mesh.Vertices))
	for i, v := range s.Mesh.Vertices {
		p := model.Mul4x1(v.Vec4(1))
		view[i] = p.Vec3()
		c := proj.Mul4x1(p)
		ndc[i] = mgl32.Vec2{c.X() / c.W(), c.Y() / c.W()}
	}

	faces := make([]face, 0, len(s.Mesh.Faces))
	for i, f := range s.Mesh.Faces {
		a, b, c := ndc[f[0]], ndc[f[1]], ndc[f[2]]
		// Counter-clockwise in NDC faces the camera.
		if b.Sub(a).X()*c.Sub(a).Y()-b.Sub(a).Y()*c.Sub(a).X() <= 0 {
			continue
		}

		va, vb, vc := view[f[0]], view[f[1]], view[f[2]]
		n := vb.Sub(va).Cross(vc.Sub(va)).Normalize()
		ff := face{
			index: i,
			depth: (va.Z() + vb.Z() + vc.Z()) / 3,
			shade: ambient + diffuse*max(n.Dot(s.Light), 0),
		}
		for k, p := range [3]mgl32.Vec2{a, b, c} {
			ff.pts[k] = fb.Pt(toScreen(p.X(), w), toScreen(-p.Y(), h))
		}
		faces = append(faces, ff)
	}

	// Far to near.
	slices.SortFunc(faces, func(x, y face) int { return cmp.Compare(x.depth, y.depth) })

	for _, f := range faces {
		r.SetTextColor(shade(s.Mesh.FaceColor(f.index), f.shade))
		p := f.pts
		r.FillTriangle(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		if s.Outline {
			r.SetTextColor(r.BackColor())
			r.DrawPolygon(p[:])
		}
	}
	return Stats{Faces: len(s.Mesh.Faces), Drawn: len(faces)}
}

// toScreen maps an NDC coordinate in [-1, 1] to [0, size].
func toScreen(v, size float32) int {
	return int(math.Round(float64((v + 1) * 0.5 * size)))
}

func shade(c fb.Color, k float32) fb.Color {
	scale := func(v uint8) uint8 {
		return uint8(min(float32(v)*k, 255))
	}
	return fb.RGB(scale(c.R), scale(c.G), scale(c.B))
}
