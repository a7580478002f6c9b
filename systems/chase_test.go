package systems

import (
	"testing"

	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/geom"
)

func TestWindowToWorld(t *testing.T) {
	win := Window{Width: 800, Height: 600}

	tests := []struct {
		in, want geom.Vec2
	}{
		{geom.V(400, 300), geom.V(0, 0)},
		{geom.V(0, 0), geom.V(-400, -300)},
		{geom.V(800, 600), geom.V(400, 300)},
	}
	for _, tt := range tests {
		if got := win.ToWorld(tt.in); got != tt.want {
			t.Errorf("ToWorld(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestChaseCursorFromRest(t *testing.T) {
	win := Window{Width: 800, Height: 600}
	// Cursor at window (500, 350) is world (100, 50).
	cursor := geom.V(500, 350)

	tfs := []components.Transform{
		{Position: geom.V(99.9, 50)}, // close: force below max
		{Position: geom.V(-100, 50)}, // far: force clamped
	}
	vels := []components.Velocity{{Max: 1}, {Max: 1}}
	forces := []components.Force{{Max: 0.25}, {Max: 0.25}}

	if !ChaseCursor(win, cursor, true, tfs, vels, forces) {
		t.Fatal("expected forces to be written")
	}

	for i, tf := range tfs {
		want := geom.V(100, 50).Sub(tf.Position).ClampLengthMax(0.25)
		got := forces[i].Vector
		if !near(got.X, want.X) || !near(got.Y, want.Y) {
			t.Errorf("agent %d force = %v, want %v", i, got, want)
		}
	}
	if !near(forces[1].Vector.Length(), 0.25) {
		t.Errorf("far agent force length = %v, want 0.25", forces[1].Vector.Length())
	}
	if forces[1].Vector.Y != 0 || forces[1].Vector.X <= 0 {
		t.Errorf("far agent force should point along +X, got %v", forces[1].Vector)
	}
}

func TestChaseCursorSubtractsVelocity(t *testing.T) {
	win := Window{Width: 200, Height: 200}
	cursor := geom.V(100, 100) // world origin

	tfs := []components.Transform{{Position: geom.V(0, 0)}}
	vels := []components.Velocity{{Vector: geom.V(0.1, 0), Max: 1}}
	forces := []components.Force{{Max: 0.25}}

	ChaseCursor(win, cursor, true, tfs, vels, forces)

	// Agent sits on the target, so steering only cancels its velocity.
	if got := forces[0].Vector; !near(got.X, -0.1) || !near(got.Y, 0) {
		t.Errorf("force = %v, want (-0.1, 0)", got)
	}
}

func TestChaseCursorSkips(t *testing.T) {
	tests := []struct {
		name      string
		win       Window
		hasCursor bool
	}{
		{"no cursor", Window{Width: 800, Height: 600}, false},
		{"no window", Window{}, true},
		{"zero height", Window{Width: 800}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tfs := []components.Transform{{}}
			vels := []components.Velocity{{Max: 1}}
			prior := geom.V(0.1, 0.2)
			forces := []components.Force{{Vector: prior, Max: 0.25}}

			if ChaseCursor(tt.win, geom.V(10, 10), tt.hasCursor, tfs, vels, forces) {
				t.Error("expected no forces written")
			}
			if forces[0].Vector != prior {
				t.Errorf("force changed to %v", forces[0].Vector)
			}
		})
	}
}
