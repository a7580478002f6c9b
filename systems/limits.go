package systems

import "github.com/pthm-cable/boids/components"

// SetLimits assigns new maxima to every agent and clamps the current vectors
// so the length bounds hold immediately.
func SetLimits(vels []components.Velocity, forces []components.Force, maxSpeed, maxForce float32) {
	for i := range vels {
		vels[i].Max = maxSpeed
		vels[i].Vector = vels[i].Vector.ClampLengthMax(maxSpeed)
	}
	for i := range forces {
		forces[i].Max = maxForce
		forces[i].Vector = forces[i].Vector.ClampLengthMax(maxForce)
	}
}
