// Package renderer draws the scene with raylib and adapts raylib input into
// frame input for the game.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/camera"
	"github.com/pthm-cable/boids/geom"
	"github.com/pthm-cable/boids/mesh"
	"github.com/pthm-cable/boids/scene"
)

// MeshRenderer draws scene meshes as filled triangles.
type MeshRenderer struct {
	world  []geom.Vec2
	screen []rl.Vector2
}

// NewMeshRenderer creates a mesh renderer.
func NewMeshRenderer() *MeshRenderer {
	return &MeshRenderer{}
}

// Draw renders every drawable in the scene, lower layers first.
func (r *MeshRenderer) Draw(s *scene.Scene, cam *camera.Camera) {
	s.Drawables(func(d scene.Drawable) {
		r.drawOne(d, cam)
	})
}

func (r *MeshRenderer) drawOne(d scene.Drawable, cam *camera.Camera) {
	m := d.Renderable.Mesh
	if m == nil {
		return
	}
	pos := d.Transform.Position
	if !cam.IsVisible(pos.X, pos.Y, d.BoundingRadius()) {
		return
	}

	r.world = d.WorldVertices(r.world[:0])
	r.screen = r.screen[:0]
	for _, p := range r.world {
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		r.screen = append(r.screen, rl.Vector2{X: sx, Y: sy})
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := r.screen[ia], r.screen[ib], r.screen[ic]
		// raylib culls triangles that are clockwise on screen
		if !counterClockwise(a, b, c) {
			b, c = c, b
		}
		rl.DrawTriangle(a, b, c, ToRL(m.Colors[ia]))
	}
}

// counterClockwise reports whether a, b, c wind counter-clockwise as seen on
// a y-down screen.
func counterClockwise(a, b, c rl.Vector2) bool {
	return (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) < 0
}

// ToRL converts a mesh color to a raylib color.
func ToRL(c mesh.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
