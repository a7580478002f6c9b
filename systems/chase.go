package systems

import (
	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/geom"
)

// Window describes the host window for one tick.
type Window struct {
	Width, Height float32
}

// Valid reports whether the window has a usable size.
func (w Window) Valid() bool {
	return w.Width > 0 && w.Height > 0
}

// ToWorld converts window coordinates (origin bottom-left, y up) into the
// centered world space used for agent placement and the camera.
func (w Window) ToWorld(p geom.Vec2) geom.Vec2 {
	return p.Sub(geom.Vec2{X: w.Width / 2, Y: w.Height / 2})
}

// ChaseCursor sets each agent's force to the seek-steering force toward the
// cursor. When the window is unusable or there is no cursor, forces are left
// as they are. Returns whether forces were written.
func ChaseCursor(
	win Window,
	cursor geom.Vec2,
	hasCursor bool,
	transforms []components.Transform,
	vels []components.Velocity,
	forces []components.Force,
) bool {
	if !win.Valid() || !hasCursor {
		return false
	}

	target := win.ToWorld(cursor)
	for i := range forces {
		force := &forces[i]
		desired := target.Sub(transforms[i].Position)
		force.Vector = desired.Sub(vels[i].Vector).ClampLengthMax(force.Max)
	}
	return true
}
