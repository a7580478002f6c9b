package telemetry

import (
	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/geom"
)

// maxSpeedTolerance is how close to its limit an agent must be to count as
// running at max speed.
const maxSpeedTolerance = 1e-3

// Collector accumulates per-tick observations and produces WindowStats.
type Collector struct {
	windowTicks int64
	dt          float64

	windowStartTick int64

	ticks        int
	steeredTicks int
	forceSum     float64
	forceCount   int
	forceMax     float64

	// Reused between flushes
	speeds []float64
	dists  []float64
	xs, ys []float64
}

// NewCollector creates a collector that flushes every windowTicks ticks.
// dt is the wall-clock duration of one tick, used for sim_time.
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int64(windowTicks),
		dt:          dt,
	}
}

// RecordTick records one tick. forces must be sampled after the chase pass
// and before the forces are consumed.
func (c *Collector) RecordTick(steered bool, forces []components.Force) {
	c.ticks++
	if !steered {
		return
	}
	c.steeredTicks++
	for _, f := range forces {
		m := float64(f.Vector.Length())
		c.forceSum += m
		c.forceCount++
		if m > c.forceMax {
			c.forceMax = m
		}
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the window's counters and the agents'
// state at currentTick, then resets the counters. target is the cursor in
// world space; it is ignored when hasTarget is false.
func (c *Collector) Flush(
	currentTick int64,
	transforms []components.Transform,
	vels []components.Velocity,
	target geom.Vec2,
	hasTarget bool,
) WindowStats {
	n := len(transforms)
	c.speeds = c.speeds[:0]
	c.dists = c.dists[:0]
	c.xs = c.xs[:0]
	c.ys = c.ys[:0]

	atMax := 0
	for i := range transforms {
		pos := transforms[i].Position
		speed := vels[i].Vector.Length()
		c.speeds = append(c.speeds, float64(speed))
		c.xs = append(c.xs, float64(pos.X))
		c.ys = append(c.ys, float64(pos.Y))
		if vels[i].Max-speed <= maxSpeedTolerance {
			atMax++
		}
		if hasTarget {
			c.dists = append(c.dists, float64(target.Sub(pos).Length()))
		}
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Agents:          n,
		ForceMax:        c.forceMax,
		SpreadX:         StdDev(c.xs),
		SpreadY:         StdDev(c.ys),
	}
	stats.SpeedMean, stats.SpeedP50, stats.SpeedP90, stats.SpeedMax = Summarize(c.speeds)
	stats.TargetDistMean, _, stats.TargetDistP90, _ = Summarize(c.dists)

	if c.ticks > 0 {
		stats.SteeredFrac = float64(c.steeredTicks) / float64(c.ticks)
	}
	if c.forceCount > 0 {
		stats.ForceMean = c.forceSum / float64(c.forceCount)
	}
	if n > 0 {
		stats.AtMaxSpeedFrac = float64(atMax) / float64(n)
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.ticks = 0
	c.steeredTicks = 0
	c.forceSum = 0
	c.forceCount = 0
	c.forceMax = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}
