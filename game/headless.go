package game

import (
	"github.com/chewxy/math32"

	"github.com/pthm-cable/boids/config"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/geom"
)

// HeadlessInput synthesizes the input for the next tick when no window
// exists. The window size is the configured screen size and the cursor
// follows headless.cursor.
func (g *Game) HeadlessInput() flock.Input {
	cfg := g.cfg
	in := flock.Input{
		Width:  cfg.Derived.ScreenW32,
		Height: cfg.Derived.ScreenH32,
	}
	center := geom.V(in.Width/2, in.Height/2)

	switch cfg.Headless.Cursor {
	case config.CursorCenter:
		in.Cursor = center
		in.HasCursor = true
	case config.CursorOrbit:
		period := int64(cfg.Headless.OrbitPeriod)
		phase := float32(g.Tick()%period) / float32(period)
		r := float32(cfg.Headless.OrbitRadius)
		in.Cursor = center.Add(geom.XAxis.Rotate(phase * 2 * math32.Pi).Scale(r))
		in.HasCursor = true
	}
	return in
}

// UpdateHeadless runs one tick with synthesized input.
func (g *Game) UpdateHeadless() bool {
	return g.Frame(g.HeadlessInput())
}

