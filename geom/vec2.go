// Package geom provides the float32 2D vector used by the simulation core.
package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float32
}

// Zero is the zero vector.
var Zero = Vec2{}

// XAxis is the reference forward direction used for agent headings.
var XAxis = Vec2{X: 1, Y: 0}

// V returns the vector (x, y).
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// PerpDot returns the z component of the cross product v × o.
func (v Vec2) PerpDot(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSquared returns |v|².
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns |v|.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// ClampLengthMax returns v scaled down so that its length is at most max.
// Vectors already within the limit are returned unchanged.
func (v Vec2) ClampLengthMax(max float32) Vec2 {
	lenSq := v.LengthSquared()
	if lenSq > max*max {
		return v.Scale(max / math32.Sqrt(lenSq))
	}
	return v
}

// AngleTo returns the signed angle in radians that rotates v onto o,
// in the range (-Pi, Pi]. Counter-clockwise is positive.
// The result is NaN-free but meaningless when either vector is zero;
// callers must check for that themselves.
func (v Vec2) AngleTo(o Vec2) float32 {
	return math32.Atan2(v.PerpDot(o), v.Dot(o))
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	sin, cos := math32.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsZero reports whether f is exactly zero (either sign). Subnormal values
// are not zero.
func IsZero(f float32) bool {
	return f == 0
}
