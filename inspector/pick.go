package inspector

import (
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/geom"
)

// Pick returns the agent closest to p within radius world units.
func Pick(f *flock.Flock, p geom.Vec2, radius float32) (flock.Handle, bool) {
	var closest flock.Handle
	closestDist := radius * radius
	found := false

	for i, tf := range f.Transforms() {
		dist := tf.Position.Sub(p).LengthSquared()
		if dist <= closestDist {
			closest = flock.Handle(i)
			closestDist = dist
			found = true
		}
	}
	return closest, found
}
