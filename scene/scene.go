// Package scene keeps the render-side entity store: drawable meshes with
// transforms, the camera, and entities mirroring arena agents.
package scene

import (
	"sort"

	"github.com/kamstrup/intmap"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/mesh"
)

// Layers used by the demos.
const (
	LayerBackground int8 = -1
	LayerAgents     int8 = 0
)

// Drawable is one entity ready for the renderer.
type Drawable struct {
	Transform  components.Transform
	Renderable components.Renderable
}

// Scene wraps an ECS world with the mappers and filters the demos need.
type Scene struct {
	world *ecs.World

	staticMapper *ecs.Map2[components.Transform, components.Renderable]
	agentMapper  *ecs.Map3[components.Transform, components.Renderable, components.AgentLink]
	cameraMapper *ecs.Map2[components.Transform, components.Camera]

	drawFilter *ecs.Filter2[components.Transform, components.Renderable]
	linkFilter *ecs.Filter2[components.Transform, components.AgentLink]

	tfMap     *ecs.Map[components.Transform]
	renderMap *ecs.Map[components.Renderable]
	camMap    *ecs.Map[components.Camera]

	camera   ecs.Entity
	byHandle *intmap.Map[uint32, ecs.Entity]
	count    int

	drawBuf []Drawable
}

// New creates a scene containing a single orthographic camera at the origin.
func New() *Scene {
	world := ecs.NewWorld()

	s := &Scene{
		world:        world,
		staticMapper: ecs.NewMap2[components.Transform, components.Renderable](world),
		agentMapper:  ecs.NewMap3[components.Transform, components.Renderable, components.AgentLink](world),
		cameraMapper: ecs.NewMap2[components.Transform, components.Camera](world),
		drawFilter:   ecs.NewFilter2[components.Transform, components.Renderable](world),
		linkFilter:   ecs.NewFilter2[components.Transform, components.AgentLink](world),
		tfMap:        ecs.NewMap[components.Transform](world),
		renderMap:    ecs.NewMap[components.Renderable](world),
		camMap:       ecs.NewMap[components.Camera](world),
		byHandle:     intmap.New[uint32, ecs.Entity](256),
	}

	s.camera = s.cameraMapper.NewEntity(&components.Transform{}, &components.Camera{Zoom: 1})

	return s
}

// AddStatic adds a mesh that never moves on its own.
func (s *Scene) AddStatic(m *mesh.Mesh, tf components.Transform, scale float32, layer int8) ecs.Entity {
	s.count++
	return s.staticMapper.NewEntity(&tf, &components.Renderable{Mesh: m, Scale: scale, Layer: layer})
}

// SetRenderable replaces the mesh, scale and layer of a drawable entity.
// Returns false if e is not a live drawable.
func (s *Scene) SetRenderable(e ecs.Entity, r components.Renderable) bool {
	if !s.world.Alive(e) || !s.renderMap.Has(e) {
		return false
	}
	*s.renderMap.Get(e) = r
	return true
}

// AddAgents creates a drawable entity for every agent in f that does not have
// one yet, all sharing mesh m. Returns the number of entities created.
func (s *Scene) AddAgents(f *flock.Flock, m *mesh.Mesh) int {
	added := 0
	transforms := f.Transforms()
	for i := range transforms {
		h := uint32(i)
		if _, ok := s.byHandle.Get(h); ok {
			continue
		}
		tf := transforms[i]
		e := s.agentMapper.NewEntity(
			&tf,
			&components.Renderable{Mesh: m, Scale: 1, Layer: LayerAgents},
			&components.AgentLink{Handle: h},
		)
		s.byHandle.Put(h, e)
		added++
	}
	s.count += added
	return added
}

// Sync copies the arena's transforms onto the agent entities.
func (s *Scene) Sync(f *flock.Flock) {
	transforms := f.Transforms()
	query := s.linkFilter.Query()
	for query.Next() {
		tf, link := query.Get()
		if int(link.Handle) < len(transforms) {
			*tf = transforms[link.Handle]
		}
	}
}

// AgentTransform returns the scene-side transform of an agent.
func (s *Scene) AgentTransform(h flock.Handle) (components.Transform, bool) {
	e, ok := s.byHandle.Get(uint32(h))
	if !ok || !s.world.Alive(e) {
		return components.Transform{}, false
	}
	return *s.tfMap.Get(e), true
}

// CameraZoom returns the zoom stored on the camera entity.
func (s *Scene) CameraZoom() float32 {
	return s.camMap.Get(s.camera).Zoom
}

// SetCameraZoom stores a new zoom on the camera entity.
func (s *Scene) SetCameraZoom(zoom float32) {
	s.camMap.Get(s.camera).Zoom = zoom
}

// Len returns the number of drawable entities.
func (s *Scene) Len() int {
	return s.count
}

// Drawables calls fn for every drawable, lower layers first. Entities within a
// layer keep the store's iteration order.
func (s *Scene) Drawables(fn func(d Drawable)) {
	s.drawBuf = s.drawBuf[:0]
	query := s.drawFilter.Query()
	for query.Next() {
		tf, r := query.Get()
		s.drawBuf = append(s.drawBuf, Drawable{Transform: *tf, Renderable: *r})
	}

	sort.SliceStable(s.drawBuf, func(i, j int) bool {
		return s.drawBuf[i].Renderable.Layer < s.drawBuf[j].Renderable.Layer
	})

	for _, d := range s.drawBuf {
		fn(d)
	}
}
