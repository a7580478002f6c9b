// Package systems contains the per-tick update routines for the agent arena.
// Each routine makes one exclusive pass over the slices it is given.
package systems

import (
	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/geom"
)

// ApplyForce folds each agent's pending force into its velocity and consumes
// the force. Mass is one, so the force is an impulse for this tick only.
func ApplyForce(vels []components.Velocity, forces []components.Force) {
	for i := range vels {
		vel := &vels[i]
		force := &forces[i]

		vel.Vector = vel.Vector.Add(force.Vector).ClampLengthMax(vel.Max)
		force.Vector = geom.Zero
	}
}

// Integrate advances each agent by its velocity (one tick = one time unit) and
// turns it to face along the velocity.
func Integrate(transforms []components.Transform, vels []components.Velocity) {
	for i := range transforms {
		tf := &transforms[i]
		v := vels[i].Vector

		tf.Position = tf.Position.Add(v)

		// A stationary agent keeps its last heading. Only exact zero counts:
		// the angle against a zero vector is undefined.
		if !geom.IsZero(v.Length()) {
			tf.Rotation = geom.XAxis.AngleTo(v)
		}
	}
}
