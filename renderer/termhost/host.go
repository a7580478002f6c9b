// Package termhost runs the game in a terminal. Each cell stands for a block
// of cellWidth x cellHeight screen pixels; agents are drawn as arrows.
package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/boids/cli"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/game"
	"github.com/pthm-cable/boids/geom"
	"github.com/pthm-cable/boids/mesh"
	"github.com/pthm-cable/boids/scene"
)

// arrows are indexed by heading octant, counter-clockwise from +x.
var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Glyph returns the arrow closest to a heading in radians.
func Glyph(rotation float32) rune {
	octant := int(math32.Round(rotation/(math32.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// panCells is how far one arrow key press moves the view.
const panCells = 4

// Host drives a game from terminal events.
type Host struct {
	run    *cli.Run
	g      *game.Game
	screen tcell.Screen

	cellW, cellH float32
	cols, rows   int

	cursor    geom.Vec2 // screen pixels
	hasCursor bool
	showHUD   bool
}

// New creates a host on an initialized screen and spawns the flock inside
// the terminal's pixel viewport.
func New(r *cli.Run, g *game.Game, screen tcell.Screen) *Host {
	h := &Host{
		run:     r,
		g:       g,
		screen:  screen,
		cellW:   float32(r.Config.Terminal.CellWidth),
		cellH:   float32(r.Config.Terminal.CellHeight),
		showHUD: r.Config.Render.ShowHUD,
	}
	h.resize()
	cam := g.Camera()
	g.SpawnFlock(cam.ViewportW, cam.ViewportH)
	return h
}

// Run polls events and ticks at the target rate until the user quits, the
// tick limit is reached or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.EnableFocus()
	h.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	fps := h.run.Config.Screen.TargetFPS
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.run.ApplyUpdates(h.g)
			h.Step()
			h.Draw()
			if h.run.Done(h.g.Tick()) {
				return nil
			}
		}
	}
}

// HandleEvent applies one terminal event. Returns false when the user quits.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			h.g.Pan(-panCells*h.cellW, 0)
		case tcell.KeyRight:
			h.g.Pan(panCells*h.cellW, 0)
		case tcell.KeyUp:
			h.g.Pan(0, -panCells*h.cellH)
		case tcell.KeyDown:
			h.g.Pan(0, panCells*h.cellH)
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			h.g.TogglePause()
		case 'h':
			h.showHUD = !h.showHUD
		case '+', '=':
			h.g.ZoomBy(float32(h.run.Config.Render.ZoomStep))
		case '-':
			h.g.ZoomBy(1 / float32(h.run.Config.Render.ZoomStep))
		case 'r':
			h.g.ResetCamera()
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		// Aim at the middle of the cell
		h.cursor = geom.V((float32(col)+0.5)*h.cellW, (float32(row)+0.5)*h.cellH)
		h.hasCursor = true

	case *tcell.EventFocus:
		if !ev.Focused {
			h.hasCursor = false
		}

	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

// resize maps the terminal grid onto a pixel viewport for the camera.
func (h *Host) resize() {
	h.cols, h.rows = h.screen.Size()
	h.g.Resize(float32(h.cols)*h.cellW, float32(h.rows)*h.cellH)
}

// Input returns the frame input for the current cursor state.
func (h *Host) Input() flock.Input {
	cam := h.g.Camera()
	return flock.Input{
		Width:     cam.ViewportW,
		Height:    cam.ViewportH,
		Cursor:    cam.ScreenToWindow(h.cursor.X, h.cursor.Y),
		HasCursor: h.hasCursor,
	}
}

// Step runs one tick.
func (h *Host) Step() {
	h.g.Frame(h.Input())
}

// Draw renders the scene and status line.
func (h *Host) Draw() {
	cfg := h.run.Config
	bg := tcell.StyleDefault.Background(toTCell(cfg.Derived.Background))
	h.screen.Fill(' ', bg)

	cam := h.g.Camera()
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	h.g.Scene().Drawables(func(d scene.Drawable) {
		p := d.Transform.Position
		if p.X < minX || p.X >= maxX || p.Y <= minY || p.Y > maxY {
			return
		}
		col, row, ok := h.cellOf(d.Transform.Position, cam.WorldToScreen)
		if !ok {
			return
		}
		style := bg
		if m := d.Renderable.Mesh; m != nil && len(m.Colors) > 0 {
			style = bg.Foreground(toTCell(m.Colors[0]))
		}
		h.screen.SetContent(col, row, Glyph(d.Transform.Rotation), nil, style)
	})

	if h.hasCursor {
		col, row := int(h.cursor.X/h.cellW), int(h.cursor.Y/h.cellH)
		h.screen.SetContent(col, row, '+', nil, bg.Foreground(tcell.ColorRed))
	}

	if h.showHUD {
		status := "running"
		if h.g.Paused() {
			status = "PAUSED"
		}
		line := fmt.Sprintf(" %s | agents %d | tick %d | zoom %.2fx | %s | [space] pause [+/-] zoom [arrows] pan [q] quit ",
			cfg.Screen.Title, h.g.Flock().Len(), h.g.Tick(), cam.Zoom, status)
		drawText(h.screen, 0, 0, line, tcell.StyleDefault.Reverse(true))
	}

	h.screen.Show()
}

// cellOf returns the terminal cell containing a world position.
func (h *Host) cellOf(p geom.Vec2, toScreen func(wx, wy float32) (float32, float32)) (col, row int, ok bool) {
	sx, sy := toScreen(p.X, p.Y)
	if sx < 0 || sy < 0 {
		return 0, 0, false
	}
	col, row = int(sx/h.cellW), int(sy/h.cellH)
	if col >= h.cols || row >= h.rows {
		return 0, 0, false
	}
	return col, row, true
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func toTCell(c mesh.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
