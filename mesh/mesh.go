// Package mesh builds the flat-colored triangle-list meshes the demos draw.
package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/pthm-cable/boids/geom"
)

// Color is an sRGB color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	Coral = RGB(255, 127, 80)
)

// Mesh is an indexed triangle list with one color per vertex.
type Mesh struct {
	Positions []geom.Vec2
	Colors    []Color
	Indices   []uint32
}

// ErrEmpty is returned by Validate for a mesh with no triangles.
var ErrEmpty = errors.New("mesh has no triangles")

// Validate checks that the buffers are consistent.
func (m *Mesh) Validate() error {
	if len(m.Indices) == 0 {
		return ErrEmpty
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh has %d positions but %d colors", len(m.Positions), len(m.Colors))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, len(m.Positions))
		}
	}
	return nil
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Radius returns the distance from the mesh origin to its farthest vertex.
func (m *Mesh) Radius() float32 {
	var maxSq float32
	for _, p := range m.Positions {
		if d := p.LengthSquared(); d > maxSq {
			maxSq = d
		}
	}
	return math32.Sqrt(maxSq)
}

// Triangle returns the shared agent mesh: a small arrowhead whose tip sits
// at the origin and points along +X.
func Triangle(c Color) *Mesh {
	return &Mesh{
		Positions: []geom.Vec2{{X: -10, Y: -5}, {X: 0, Y: 0}, {X: -10, Y: 5}},
		Colors:    []Color{c, c, c},
		Indices:   []uint32{0, 1, 2},
	}
}

// Circle returns a unit-radius triangle fan: vertex 0 is the center and
// vertices 1..n lie evenly spaced on the rim.
func Circle(n int, c Color) *Mesh {
	if n < 3 {
		n = 3
	}

	m := &Mesh{
		Positions: make([]geom.Vec2, 0, n+1),
		Colors:    make([]Color, 0, n+1),
		Indices:   make([]uint32, 0, 3*n),
	}

	m.Positions = append(m.Positions, geom.Zero)
	m.Colors = append(m.Colors, c)
	for i := 0; i < n; i++ {
		a := float32(i) * 2 * math32.Pi / float32(n)
		sin, cos := math32.Sincos(a)
		m.Positions = append(m.Positions, geom.Vec2{X: cos, Y: sin})
		m.Colors = append(m.Colors, c)
	}

	// Closing triangle first, then one per consecutive rim pair.
	last := uint32(n)
	m.Indices = append(m.Indices, 0, last, 1)
	for i := uint32(2); i <= last; i++ {
		m.Indices = append(m.Indices, 0, i-1, i)
	}

	return m
}
