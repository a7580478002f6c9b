// Package game wires the flock, scene, camera and telemetry into a frame loop
// that any host can drive.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/boids/camera"
	"github.com/pthm-cable/boids/config"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/mesh"
	"github.com/pthm-cable/boids/scene"
	"github.com/pthm-cable/boids/telemetry"
)

// Options configures a Game beyond what the config file holds.
type Options struct {
	Seed      int64
	LogStats  bool   // log window and perf stats via slog
	OutputDir string // CSV output directory (empty = disabled)
	Headless  bool
}

// Game holds the complete demo state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	flock     *flock.Flock
	scene     *scene.Scene
	camera    *camera.Camera
	agentMesh *mesh.Mesh

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	lastStats     telemetry.WindowStats

	// State
	spawned   bool
	paused    bool
	lastInput flock.Input
}

// New creates a game with an empty flock. Hosts call SpawnFlock once their
// window size is known.
func New(cfg *config.Config, opts Options) (*Game, error) {
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		opts:          opts,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		scene:         scene.New(),
		camera:        camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		agentMesh:     mesh.Triangle(cfg.Derived.AgentColor),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:     telemetry.NewCollector(cfg.Derived.StatsWindowTicks, 1/float64(cfg.Screen.TargetFPS)),
		outputManager: om,
	}

	g.flock = flock.New(limitsFrom(cfg), g.rng)

	return g, nil
}

// SpawnFlock sizes the camera to a w by h window and spawns the configured
// number of agents inside it. Only the first call spawns; it returns the
// number of agents added.
func (g *Game) SpawnFlock(w, h float32) int {
	if g.spawned {
		return 0
	}
	g.spawned = true

	if w > 0 && h > 0 {
		g.Resize(w, h)
	}
	handles := g.flock.Spawn(g.cfg.Flock.Count, w, h)
	g.scene.AddAgents(g.flock, g.agentMesh)

	slog.Info("flock spawned",
		"agents", len(handles),
		"width", w,
		"height", h,
		"seed", g.opts.Seed,
		"max_speed", g.cfg.Flock.MaxSpeed,
		"max_force", g.cfg.Flock.MaxForce,
		"headless", g.opts.Headless,
	)
	return len(handles)
}

func limitsFrom(cfg *config.Config) flock.Limits {
	return flock.Limits{
		MaxSpeed: cfg.Derived.MaxSpeed32,
		MaxForce: cfg.Derived.MaxForce32,
	}
}

// Frame runs one tick with the host's input unless the game is paused.
// Returns true if a tick ran.
func (g *Game) Frame(in flock.Input) bool {
	g.perfCollector.RecordFrame()
	g.lastInput = in

	if g.paused {
		return false
	}

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseChase)
	g.flock.Chase(in)
	// Forces are consumed by the next pass, so sample them here
	g.collector.RecordTick(g.flock.Steered(), g.flock.Forces())

	g.perfCollector.StartPhase(telemetry.PhaseApplyForce)
	g.flock.ApplyForces()

	g.perfCollector.StartPhase(telemetry.PhaseIntegrate)
	g.flock.Integrate()
	g.flock.Advance()

	g.perfCollector.StartPhase(telemetry.PhaseSceneSync)
	g.scene.Sync(g.flock)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	return true
}

// ApplyConfig swaps in a reloaded configuration. Steering limits and colors
// take effect on the next tick; the agent count and screen size only apply
// at startup.
func (g *Game) ApplyConfig(cfg *config.Config) {
	if cfg.Flock.Count != g.cfg.Flock.Count {
		slog.Warn("flock.count changes apply on restart",
			"current", g.cfg.Flock.Count,
			"requested", cfg.Flock.Count,
		)
	}

	g.cfg = cfg
	g.flock.SetLimits(limitsFrom(cfg))
	for i := range g.agentMesh.Colors {
		g.agentMesh.Colors[i] = cfg.Derived.AgentColor
	}

	slog.Info("config applied",
		"tick", g.Tick(),
		"max_speed", cfg.Flock.MaxSpeed,
		"max_force", cfg.Flock.MaxForce,
	)
}

// SetLimits changes the steering limits directly, as the control panel does.
func (g *Game) SetLimits(maxSpeed, maxForce float32) {
	g.flock.SetLimits(flock.Limits{MaxSpeed: maxSpeed, MaxForce: maxForce})
}

// Limits returns the current steering limits.
func (g *Game) Limits() flock.Limits {
	return g.flock.Limits()
}

// TogglePause flips the paused state and returns the new value.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// SetPaused sets the paused state.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Paused reports whether ticks are suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Resize propagates a new window size to the camera.
func (g *Game) Resize(w, h float32) {
	g.camera.Resize(w, h)
}

// ZoomBy scales the camera zoom and records it on the scene's camera entity.
func (g *Game) ZoomBy(factor float32) {
	g.camera.ZoomBy(factor)
	g.scene.SetCameraZoom(g.camera.Zoom)
}

// Pan moves the view by a screen-pixel delta.
func (g *Game) Pan(dx, dy float32) {
	g.camera.Pan(dx, dy)
}

// ResetCamera returns the camera to its initial view.
func (g *Game) ResetCamera() {
	g.camera.Reset()
	g.scene.SetCameraZoom(g.camera.Zoom)
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int64 {
	return g.flock.Tick()
}

// Flock returns the agent arena.
func (g *Game) Flock() *flock.Flock {
	return g.flock
}

// Scene returns the render-side entity store.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Camera returns the shared camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Config returns the active configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// LastInput returns the input passed to the most recent Frame.
func (g *Game) LastInput() flock.Input {
	return g.lastInput
}

// PerfStats returns timing statistics over the perf window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// LastStats returns the most recently flushed window stats.
func (g *Game) LastStats() telemetry.WindowStats {
	return g.lastStats
}

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
