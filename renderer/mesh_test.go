package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/camera"
	"github.com/pthm-cable/boids/mesh"
)

func TestCounterClockwise(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c rl.Vector2
		want    bool
	}{
		{"top, bottom-left, bottom-right", rl.Vector2{X: 50, Y: 0}, rl.Vector2{X: 0, Y: 50}, rl.Vector2{X: 100, Y: 50}, true},
		{"top, bottom-right, bottom-left", rl.Vector2{X: 50, Y: 0}, rl.Vector2{X: 100, Y: 50}, rl.Vector2{X: 0, Y: 50}, false},
		{"degenerate", rl.Vector2{X: 0, Y: 0}, rl.Vector2{X: 1, Y: 1}, rl.Vector2{X: 2, Y: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := counterClockwise(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("counterClockwise() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorldFanCounterClockwiseOnScreen(t *testing.T) {
	m := mesh.Circle(8, mesh.Coral)
	cam := camera.New(200, 200)

	project := func(i uint32) rl.Vector2 {
		p := m.Positions[i]
		sx, sy := cam.WorldToScreen(p.X*50, p.Y*50)
		return rl.Vector2{X: sx, Y: sy}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := project(m.Indices[i]), project(m.Indices[i+1]), project(m.Indices[i+2])
		if !counterClockwise(a, b, c) {
			t.Errorf("triangle %d is clockwise on screen", i/3)
		}
	}
}

func TestToRL(t *testing.T) {
	got := ToRL(mesh.Coral)
	want := rl.Color{R: 255, G: 127, B: 80, A: 255}
	if got != want {
		t.Errorf("ToRL(Coral) = %v, want %v", got, want)
	}
}
