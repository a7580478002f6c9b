package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangle(t *testing.T) {
	m := Triangle(Black)
	require.NoError(t, m.Validate())

	assert.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, float32(0), m.Positions[1].X, "tip at origin")
	for _, c := range m.Colors {
		assert.Equal(t, Black, c)
	}
}

func TestCircleFan(t *testing.T) {
	const n = 50
	m := Circle(n, Coral)
	require.NoError(t, m.Validate())

	assert.Len(t, m.Positions, n+1)
	assert.Len(t, m.Colors, n+1)
	assert.Equal(t, n, m.TriangleCount())

	// Every triangle is anchored on the center.
	for i := 0; i < len(m.Indices); i += 3 {
		assert.Equal(t, uint32(0), m.Indices[i], "triangle %d", i/3)
	}

	// First triangle closes the fan.
	assert.Equal(t, []uint32{0, n, 1}, m.Indices[:3])
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices[3:6])
	assert.Equal(t, []uint32{0, n - 1, n}, m.Indices[len(m.Indices)-3:])

	// Each rim edge is used exactly once.
	edges := make(map[[2]uint32]int)
	for i := 0; i < len(m.Indices); i += 3 {
		a, b := m.Indices[i+1], m.Indices[i+2]
		if a > b {
			a, b = b, a
		}
		edges[[2]uint32{a, b}]++
	}
	assert.Len(t, edges, n)
	for e, count := range edges {
		assert.Equal(t, 1, count, "edge %v", e)
	}
}

func TestCircleRimOnUnitCircle(t *testing.T) {
	m := Circle(12, Coral)
	assert.Equal(t, float32(0), m.Positions[0].Length())
	for i, p := range m.Positions[1:] {
		assert.InDelta(t, 1, p.Length(), 1e-5, "rim vertex %d", i)
	}
	// Vertex 1 lies on +X, vertex 4 at a quarter turn.
	assert.InDelta(t, 1, m.Positions[1].X, 1e-6)
	assert.InDelta(t, 1, m.Positions[4].Y, 1e-5)
	assert.InDelta(t, math32.Pi/2, m.Positions[1].AngleTo(m.Positions[4]), 1e-5)
}

func TestCircleMinimumVertices(t *testing.T) {
	m := Circle(1, Coral)
	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.TriangleCount())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    Mesh
		wantErr bool
	}{
		{"empty", Mesh{}, true},
		{"color mismatch", Mesh{Positions: Triangle(Black).Positions, Indices: []uint32{0, 1, 2}}, true},
		{"partial triangle", Mesh{Positions: Triangle(Black).Positions, Colors: Triangle(Black).Colors, Indices: []uint32{0, 1}}, true},
		{"index out of range", Mesh{Positions: Triangle(Black).Positions, Colors: Triangle(Black).Colors, Indices: []uint32{0, 1, 3}}, true},
		{"ok", *Triangle(Black), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRadius(t *testing.T) {
	assert.InDelta(t, math32.Sqrt(125), Triangle(Black).Radius(), 1e-5)
	assert.InDelta(t, 1, Circle(50, Coral).Radius(), 1e-5)
	assert.Equal(t, float32(0), (&Mesh{}).Radius())
}
