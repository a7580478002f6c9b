// Package flock holds the agent arena and the fixed-order tick driver.
package flock

import (
	"math/rand"

	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/geom"
	"github.com/pthm-cable/boids/systems"
)

// Handle addresses one agent. Handles are assigned in spawn order and stay
// valid for the lifetime of the Flock.
type Handle uint32

// Limits are the per-agent maxima applied at spawn.
type Limits struct {
	MaxSpeed float32
	MaxForce float32
}

// Input is everything the host supplies for one tick.
// Cursor is in window coordinates: origin at the bottom-left corner, y up.
type Input struct {
	Width, Height float32
	Cursor        geom.Vec2
	HasCursor     bool
}

// Agent is a read-only copy of one agent's records.
type Agent struct {
	Handle    Handle
	Transform components.Transform
	Velocity  components.Velocity
	Force     components.Force
}

// Flock is an arena of agents stored as parallel slices indexed by Handle.
type Flock struct {
	transforms []components.Transform
	velocities []components.Velocity
	forces     []components.Force

	limits Limits
	rng    *rand.Rand
	tick   int64

	// steered records whether the last Step wrote steering forces.
	steered bool
}

// New creates an empty flock. Positions for spawned agents are drawn from rng.
func New(limits Limits, rng *rand.Rand) *Flock {
	return &Flock{
		limits: limits,
		rng:    rng,
	}
}

// Spawn adds n agents at uniform-random positions inside the window, which is
// centered on the world origin. Nothing is spawned when the window has no
// usable size. Returns the handles of the new agents.
func (f *Flock) Spawn(n int, width, height float32) []Handle {
	win := systems.Window{Width: width, Height: height}
	if !win.Valid() || n <= 0 {
		return nil
	}

	handles := make([]Handle, 0, n)
	for i := 0; i < n; i++ {
		pos := geom.Vec2{
			X: (f.rng.Float32() - 0.5) * width,
			Y: (f.rng.Float32() - 0.5) * height,
		}
		handles = append(handles, f.add(pos))
	}
	return handles
}

// Add places a single agent at pos with zero velocity and force.
func (f *Flock) Add(pos geom.Vec2) Handle {
	return f.add(pos)
}

func (f *Flock) add(pos geom.Vec2) Handle {
	h := Handle(len(f.transforms))
	f.transforms = append(f.transforms, components.Transform{Position: pos})
	f.velocities = append(f.velocities, components.Velocity{Max: f.limits.MaxSpeed})
	f.forces = append(f.forces, components.Force{Max: f.limits.MaxForce})
	return h
}

// Step runs one tick: chase the cursor, fold forces into velocities, then
// move and turn. The returned slice is owned by the flock and is only valid
// until the next call that mutates it.
func (f *Flock) Step(in Input) []components.Transform {
	f.Chase(in)
	f.ApplyForces()
	f.Integrate()
	f.Advance()
	return f.transforms
}

// Advance ends a tick that was run pass by pass and returns the new count.
func (f *Flock) Advance() int64 {
	f.tick++
	return f.tick
}

// Chase runs the cursor-seeking pass on its own.
func (f *Flock) Chase(in Input) {
	win := systems.Window{Width: in.Width, Height: in.Height}
	f.steered = systems.ChaseCursor(win, in.Cursor, in.HasCursor, f.transforms, f.velocities, f.forces)
}

// ApplyForces runs the force integration pass on its own.
func (f *Flock) ApplyForces() {
	systems.ApplyForce(f.velocities, f.forces)
}

// Integrate runs the position and heading pass on its own.
func (f *Flock) Integrate() {
	systems.Integrate(f.transforms, f.velocities)
}

// SetLimits changes the maxima of every agent, including agents spawned
// later, and clamps current vectors to them.
func (f *Flock) SetLimits(l Limits) {
	f.limits = l
	systems.SetLimits(f.velocities, f.forces, l.MaxSpeed, l.MaxForce)
}

// Limits returns the current maxima.
func (f *Flock) Limits() Limits {
	return f.limits
}

// Len returns the number of agents.
func (f *Flock) Len() int {
	return len(f.transforms)
}

// Tick returns how many ticks have completed.
func (f *Flock) Tick() int64 {
	return f.tick
}

// Steered reports whether the most recent chase pass had a cursor to seek.
func (f *Flock) Steered() bool {
	return f.steered
}

// Agent returns a copy of the agent's records. ok is false for an unknown
// handle.
func (f *Flock) Agent(h Handle) (a Agent, ok bool) {
	if int(h) >= len(f.transforms) {
		return Agent{}, false
	}
	return Agent{
		Handle:    h,
		Transform: f.transforms[h],
		Velocity:  f.velocities[h],
		Force:     f.forces[h],
	}, true
}

// Transforms returns the live transform slice, indexed by Handle.
func (f *Flock) Transforms() []components.Transform {
	return f.transforms
}

// Velocities returns the live velocity slice, indexed by Handle.
func (f *Flock) Velocities() []components.Velocity {
	return f.velocities
}

// Forces returns the live force slice, indexed by Handle.
func (f *Flock) Forces() []components.Force {
	return f.forces
}
