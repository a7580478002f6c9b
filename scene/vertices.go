package scene

import (
	"github.com/chewxy/math32"

	"github.com/pthm-cable/boids/geom"
)

// BoundingRadius is the world-space radius around the transform position that
// contains the whole mesh.
func (d Drawable) BoundingRadius() float32 {
	if d.Renderable.Mesh == nil {
		return 0
	}
	return d.Renderable.Mesh.Radius() * d.Renderable.Scale
}

// WorldVertices appends the drawable's mesh positions in world space to dst:
// scaled, rotated by the transform's rotation, then translated.
func (d Drawable) WorldVertices(dst []geom.Vec2) []geom.Vec2 {
	m := d.Renderable.Mesh
	if m == nil {
		return dst
	}
	scale := d.Renderable.Scale
	sin, cos := math32.Sincos(d.Transform.Rotation)
	pos := d.Transform.Position

	for _, p := range m.Positions {
		x, y := p.X*scale, p.Y*scale
		dst = append(dst, geom.Vec2{
			X: pos.X + x*cos - y*sin,
			Y: pos.Y + x*sin + y*cos,
		})
	}
	return dst
}
