package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Slider ranges for the steering limits.
const (
	MaxSpeedLimit = 5.0
	MaxForceLimit = 1.0
)

// Controls is the state edited by the controls panel.
type Controls struct {
	MaxSpeed float32
	MaxForce float32
	Paused   bool
	Reset    bool // restore the limits the panel was opened with
}

// ControlsPanel renders the debug panel with steering sliders.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

func (c *ControlsPanel) height() int32 {
	return c.renderer.Theme.LineHeight*7 + c.renderer.Theme.Padding*2
}

// Contains reports whether a screen point lies on the panel while it is shown.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return x >= float32(c.x) && x < float32(c.x+c.width) &&
		y >= float32(c.y) && y < float32(c.y+c.height())
}

// Draw renders the panel and returns the controls after user edits.
func (c *ControlsPanel) Draw(in Controls) Controls {
	if !c.visible {
		return in
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	out := in
	out.Reset = false

	r.DrawPanel(c.x, c.y, c.width, c.height())

	x := float32(c.x + padding)
	y := c.y + padding
	sliderW := float32(c.width - padding*2 - 50)

	y = r.DrawSectionHeader(c.x+padding, y, "Steering")

	rl.DrawText("Max speed", c.x+padding, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	out.MaxSpeed = gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderW, Height: 14},
		"", "",
		in.MaxSpeed, 0, MaxSpeedLimit,
	)
	rl.DrawText(fmt.Sprintf("%.2f", out.MaxSpeed), int32(x+sliderW)+6, y, r.Theme.FontSize, r.Theme.ValueColor)
	y += lineHeight + 2

	rl.DrawText("Max force", c.x+padding, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	out.MaxForce = gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderW, Height: 14},
		"", "",
		in.MaxForce, 0, MaxForceLimit,
	)
	rl.DrawText(fmt.Sprintf("%.2f", out.MaxForce), int32(x+sliderW)+6, y, r.Theme.FontSize, r.Theme.ValueColor)
	y += lineHeight + 4

	buttonW := (float32(c.width) - float32(padding)*3) / 2
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: buttonW, Height: 20}, toggleText(in.Paused, "Resume", "Pause")) {
		out.Paused = !in.Paused
	}
	if gui.Button(rl.Rectangle{X: x + buttonW + float32(padding), Y: float32(y), Width: buttonW, Height: 20}, "Reset") {
		out.Reset = true
	}

	return out
}

// Changed reports whether the steering limits differ between a and b.
func (a Controls) Changed(b Controls) bool {
	return a.MaxSpeed != b.MaxSpeed || a.MaxForce != b.MaxForce
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
