// Package components defines the per-entity records shared by the agent
// arena and the render scene.
package components

import "github.com/pthm-cable/boids/mesh"

// Renderable attaches a mesh to a scene entity.
type Renderable struct {
	Mesh  *mesh.Mesh
	Scale float32 // uniform scale applied before rotation
	Layer int8    // draw order, lower first
}

// AgentLink ties a scene entity to an agent in the arena.
type AgentLink struct {
	Handle uint32
}

// Camera marks the scene's orthographic camera entity.
type Camera struct {
	Zoom float32
}
