// Package ebitenhost runs the game inside an ebiten window. It must not be
// linked into a binary together with raylib.
package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pthm-cable/boids/camera"
	"github.com/pthm-cable/boids/cli"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/game"
	"github.com/pthm-cable/boids/geom"
	"github.com/pthm-cable/boids/scene"
)

// panStep is how far the view moves per tick while an arrow key is held, in
// screen pixels.
const panStep = 8

// Host implements ebiten.Game around a game.Game.
type Host struct {
	run *cli.Run
	g   *game.Game

	showHUD bool
	lastIn  flock.Input

	white *ebiten.Image
	batch Batch
}

// New creates a host. g must have been built from r.
func New(r *cli.Run, g *game.Game) *Host {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &Host{
		run:     r,
		g:       g,
		showHUD: r.Config.Render.ShowHUD,
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update runs one tick.
func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	h.run.ApplyUpdates(h.g)
	h.handleKeys()

	h.lastIn = h.input()
	h.g.Frame(h.lastIn)

	if h.run.Done(h.g.Tick()) {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.g.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showHUD = !h.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		h.g.ResetCamera()
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		h.g.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		h.g.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		h.g.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		h.g.Pan(0, panStep)
	}

	zoomStep := float32(h.run.Config.Render.ZoomStep)
	if _, dy := ebiten.Wheel(); dy != 0 {
		h.g.ZoomBy(math32.Pow(zoomStep, float32(dy)))
	}
}

// input reads the cursor. The cursor only counts while it is over the window.
func (h *Host) input() flock.Input {
	cam := h.g.Camera()
	mx, my := ebiten.CursorPosition()
	sx, sy := float32(mx), float32(my)
	return flock.Input{
		Width:     cam.ViewportW,
		Height:    cam.ViewportH,
		Cursor:    cam.ScreenToWindow(sx, sy),
		HasCursor: ebiten.IsFocused() && cam.Contains(sx, sy),
	}
}

// Draw renders the scene.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(h.run.Config.Derived.Background))

	h.batch.Reset()
	h.g.Scene().Drawables(func(d scene.Drawable) {
		if !h.batch.Add(d, h.g.Camera()) {
			h.flush(screen)
			h.batch.Add(d, h.g.Camera())
		}
	})
	h.flush(screen)

	if h.showHUD {
		status := "running"
		if h.g.Paused() {
			status = "paused"
		} else if !h.lastIn.HasCursor {
			status = "coasting"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"%s\nAgents: %d | Tick: %d | TPS: %.0f | Zoom: %.2fx | %s",
			h.run.Config.Screen.Title, h.g.Flock().Len(), h.g.Tick(), ebiten.ActualTPS(), h.g.Camera().Zoom, status,
		))
	}
}

func (h *Host) flush(screen *ebiten.Image) {
	if len(h.batch.Indices) == 0 {
		return
	}
	screen.DrawTriangles(h.batch.Vertices, h.batch.Indices, h.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	h.batch.Reset()
}

// Layout follows the window size and keeps the camera viewport in step. The
// first layout, which ebiten runs before the first Update, spawns the flock.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := float32(outsideWidth), float32(outsideHeight)
	cam := h.g.Camera()
	if w != cam.ViewportW || ht != cam.ViewportH {
		h.g.Resize(w, ht)
	}
	h.g.SpawnFlock(w, ht)
	return outsideWidth, outsideHeight
}

// Batch accumulates screen-space triangles for one DrawTriangles call.
type Batch struct {
	Vertices []ebiten.Vertex
	Indices  []uint16

	world []geom.Vec2
}

// Reset empties the batch, keeping its buffers.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// Add appends a drawable projected through cam. Drawables outside the view
// are skipped. Returns false, leaving the batch unchanged, if the 16-bit
// index space has no room for it; an empty batch always accepts.
func (b *Batch) Add(d scene.Drawable, cam *camera.Camera) bool {
	m := d.Renderable.Mesh
	if m == nil {
		return true
	}
	pos := d.Transform.Position
	if !cam.IsVisible(pos.X, pos.Y, d.BoundingRadius()) {
		return true
	}
	base := len(b.Vertices)
	if base > 0 && base+len(m.Positions) > math.MaxUint16+1 {
		return false
	}

	b.world = d.WorldVertices(b.world[:0])
	for i, p := range b.world {
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		c := m.Colors[i]
		b.Vertices = append(b.Vertices, ebiten.Vertex{
			DstX:   sx,
			DstY:   sy,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255,
		})
	}
	for _, idx := range m.Indices {
		b.Indices = append(b.Indices, uint16(base+int(idx)))
	}
	return true
}
