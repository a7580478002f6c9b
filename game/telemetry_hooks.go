package game

import (
	"log/slog"

	"github.com/pthm-cable/boids/systems"
)

// flushTelemetry emits window stats once the collector's window is full.
func (g *Game) flushTelemetry() {
	tick := g.flock.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	in := g.lastInput
	win := systems.Window{Width: in.Width, Height: in.Height}
	hasTarget := in.HasCursor && win.Valid()
	target := win.ToWorld(in.Cursor)

	stats := g.collector.Flush(tick, g.flock.Transforms(), g.flock.Velocities(), target, hasTarget)
	perfStats := g.perfCollector.Stats()
	g.lastStats = stats

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
