// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene3d renders rotating filled-vector meshes through the fb
// renderer: vertices are transformed with mathgl, back faces are culled in
// screen space, the rest are painter sorted and filled with flat shading.
package scene3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/fb"
)

// Mesh is a closed triangle mesh. Faces wind counter-clockwise when seen
// from outside; Colors holds one base color per face and is cycled when
// shorter than Faces.
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Faces    [][3]int
	Colors   []fb.Color
}

// FaceColor returns the base color of face i.
func (m *Mesh) FaceColor(i int) fb.Color {
	if len(m.Colors) == 0 {
		return fb.White
	}
	return m.Colors[i%len(m.Colors)]
}

// Cube returns a cube of edge 2 centered on the origin, two triangles per
// side with one color per side.
func Cube() Mesh {
	v := []mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	quads := [][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	sides := []fb.Color{fb.Red, fb.Green, fb.Blue, fb.Yellow, fb.Cyan, fb.Magenta}

	m := Mesh{Name: "cube", Vertices: v}
	for i, q := range quads {
		m.Faces = append(m.Faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
		m.Colors = append(m.Colors, sides[i], sides[i])
	}
	return m
}

// Octahedron returns a regular octahedron with vertices on the unit axes.
func Octahedron() Mesh {
	m := Mesh{
		Name: "octahedron",
		Vertices: []mgl32.Vec3{
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		},
		Colors: []fb.Color{
			fb.Red, fb.Green, fb.Blue, fb.Yellow,
			fb.Cyan, fb.Magenta, fb.White, fb.Gray,
		},
	}
	for _, x := range [2]int{0, 1} {
		for _, y := range [2]int{2, 3} {
			for _, z := range [2]int{4, 5} {
				// One negative axis flips the winding.
				if (x+y+z)%2 == 0 {
					m.Faces = append(m.Faces, [3]int{x, y, z})
				} else {
					m.Faces = append(m.Faces, [3]int{x, z, y})
				}
			}
		}
	}
	return m
}

// Torus returns a torus around the Y axis with the given major and minor
// radii, tessellated into rings x sides quads.
func Torus(major, minor float32, rings, sides int) Mesh {
	rings, sides = max(rings, 3), max(sides, 3)
	m := Mesh{Name: "torus", Colors: []fb.Color{fb.Hex("#FF8800"), fb.Hex("#2266FF")}}

	for i := range rings {
		u := 2 * math.Pi * float64(i) / float64(rings)
		for j := range sides {
			v := 2 * math.Pi * float64(j) / float64(sides)
			d := float64(major) + float64(minor)*math.Cos(v)
			m.Vertices = append(m.Vertices, mgl32.Vec3{
				float32(d * math.Cos(u)),
				float32(float64(minor) * math.Sin(v)),
				float32(d * math.Sin(u)),
			})
		}
	}

	idx := func(i, j int) int { return (i%rings)*sides + j%sides }
	for i := range rings {
		for j := range sides {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			m.Faces = append(m.Faces, [3]int{a, c, b}, [3]int{a, d, c})
		}
	}
	// Alternate colors per ring.
	ringColors := make([]fb.Color, 0, 4*sides)
	for k := range 2 {
		for range 2 * sides {
			ringColors = append(ringColors, m.Colors[k])
		}
	}
	m.Colors = ringColors
	return m
}

// ByName returns the mesh for "cube", "octahedron" or "torus".
func ByName(name string) (Mesh, bool) {
	switch name {
	case "cube":
		return Cube(), true
	case "octahedron":
		return Octahedron(), true
	case "torus":
		return Torus(1, 0.4, 16, 10), true
	}
	return Mesh{}, false
}
