package geom

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestClampLengthMax(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		max  float32
		want Vec2
	}{
		{"within limit", V(0.5, 0), 1, V(0.5, 0)},
		{"on limit", V(0, 1), 1, V(0, 1)},
		{"over limit keeps direction", V(10, 0), 1, V(1, 0)},
		{"diagonal", V(3, 4), 2.5, V(1.5, 2)},
		{"zero vector", Zero, 1, Zero},
		{"zero max", V(3, 4), 0, Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLengthMax(tt.max)
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
			assert.LessOrEqual(t, got.Length(), tt.max+1e-6)
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name string
		to   Vec2
		want float32
	}{
		{"same direction", V(1, 0), 0},
		{"quarter turn ccw", V(0, 1), math32.Pi / 2},
		{"quarter turn cw", V(0, -1), -math32.Pi / 2},
		{"opposite", V(-1, 0), math32.Pi},
		{"scaled diagonal", V(5, 5), math32.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, XAxis.AngleTo(tt.to), 1e-6)
		})
	}
}

func TestRotate(t *testing.T) {
	got := XAxis.Rotate(math32.Pi / 2)
	assert.InDelta(t, 0, got.X, 1e-6)
	assert.InDelta(t, 1, got.Y, 1e-6)
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.True(t, IsZero(float32(math.Copysign(0, -1))))
	assert.False(t, IsZero(math.SmallestNonzeroFloat32))
	assert.False(t, IsZero(1e-20))
}
