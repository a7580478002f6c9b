// Package inspector lets the user click an agent and read its live state.
package inspector

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/camera"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/geom"
)

// Panel dimensions
const (
	PanelWidth   = 240
	PanelPadding = 10
	HeaderHeight = 26
	LineHeight   = 16
)

// HitRadius is how far from an agent's nose a click still selects it, in
// screen pixels.
const HitRadius = 12

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorLabel       = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector manages agent selection and panel rendering.
type Inspector struct {
	selected    flock.Handle
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates a new inspector anchored at the bottom-left corner.
func NewInspector(screenHeight int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenHeight)
	return ins
}

// Resize re-anchors the panel.
func (ins *Inspector) Resize(screenHeight int32) {
	ins.panelX = 10
	ins.panelY = screenHeight - ins.panelHeight() - 40
}

// HandleInput selects the agent under a left click. Right click deselects.
func (ins *Inspector) HandleInput(mouseX, mouseY float32, cam *camera.Camera, f *flock.Flock) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	// Clicks on the panel itself are ignored
	if ins.hasSelected &&
		int32(mouseX) >= ins.panelX && int32(mouseX) <= ins.panelX+PanelWidth &&
		int32(mouseY) >= ins.panelY && int32(mouseY) <= ins.panelY+ins.panelHeight() {
		return
	}

	wx, wy := cam.ScreenToWorld(mouseX, mouseY)
	if h, ok := Pick(f, geom.V(wx, wy), HitRadius/cam.Zoom); ok {
		ins.Select(h)
	}
}

// Select makes h the inspected agent.
func (ins *Inspector) Select(h flock.Handle) {
	ins.selected = h
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected agent.
func (ins *Inspector) Selected() (flock.Handle, bool) {
	return ins.selected, ins.hasSelected
}

func (ins *Inspector) panelHeight() int32 {
	return HeaderHeight + PanelPadding*2 + LineHeight*6
}

// Draw renders the inspector panel if an agent is selected.
func (ins *Inspector) Draw(f *flock.Flock) {
	if !ins.hasSelected {
		return
	}
	a, ok := f.Agent(ins.selected)
	if !ok {
		ins.Deselect()
		return
	}

	x, y := ins.panelX, ins.panelY
	h := ins.panelHeight()
	rl.DrawRectangle(x, y, PanelWidth, h, ColorPanelBg)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawRectangleLines(x, y, PanelWidth, h, ColorPanelBorder)
	rl.DrawText(fmt.Sprintf("Agent #%d", a.Handle), x+PanelPadding, y+6, 16, ColorHeaderText)

	y += HeaderHeight + PanelPadding
	speed := a.Velocity.Vector.Length()
	lines := []string{
		fmt.Sprintf("pos      (%.1f, %.1f)", a.Transform.Position.X, a.Transform.Position.Y),
		fmt.Sprintf("heading  %.1f deg", a.Transform.Rotation*180/math32.Pi),
		fmt.Sprintf("vel      (%.3f, %.3f)", a.Velocity.Vector.X, a.Velocity.Vector.Y),
		fmt.Sprintf("speed    %.3f / %.3f", speed, a.Velocity.Max),
		fmt.Sprintf("force    (%.3f, %.3f)", a.Force.Vector.X, a.Force.Vector.Y),
		fmt.Sprintf("max force %.3f", a.Force.Max),
	}
	for _, line := range lines {
		rl.DrawText(line, x+PanelPadding, y, 12, ColorLabel)
		y += LineHeight
	}
}

// DrawSelectionHighlight circles the selected agent and draws its velocity,
// scaled up so it is visible.
func (ins *Inspector) DrawSelectionHighlight(f *flock.Flock, cam *camera.Camera) {
	if !ins.hasSelected {
		return
	}
	a, ok := f.Agent(ins.selected)
	if !ok {
		return
	}

	pos := a.Transform.Position
	sx, sy := cam.WorldToScreen(pos.X, pos.Y)
	rl.DrawCircleLines(int32(sx), int32(sy), 18*cam.Zoom, rl.Yellow)

	tip := pos.Add(a.Velocity.Vector.Scale(40))
	tx, ty := cam.WorldToScreen(tip.X, tip.Y)
	rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: tx, Y: ty}, 2, rl.Green)
}
