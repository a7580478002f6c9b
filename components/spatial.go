package components

import "github.com/pthm-cable/boids/geom"

// Transform is an entity's world position and heading.
// Rotation is the counter-clockwise angle from the +X axis, in radians.
type Transform struct {
	Position geom.Vec2
	Rotation float32
}

// Velocity is the per-tick displacement of an agent.
// Max bounds the vector's length after every write.
type Velocity struct {
	Vector geom.Vec2
	Max    float32
}

// Force is the steering impulse applied on the next velocity update.
// Max bounds the vector's length after every write.
type Force struct {
	Vector geom.Vec2
	Max    float32
}
