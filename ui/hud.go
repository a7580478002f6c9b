package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Agents    int
	Tick      int64
	FPS       int32
	Paused    bool
	Zoom      float32
	HasCursor bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Agents: %d | Tick: %d | FPS: %d | Zoom: %.2fx", data.Agents, data.Tick, data.FPS, data.Zoom),
		10, 35, 16, rl.LightGray,
	)

	statusText := "Running"
	statusColor := rl.Yellow
	switch {
	case data.Paused:
		statusText = "PAUSED"
	case !data.HasCursor:
		statusText = "Coasting (no cursor)"
		statusColor = rl.LightGray
	}
	rl.DrawText(statusText, 10, 55, 16, statusColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders per-phase frame timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	height := lineHeight*int32(len(telemetry.Phases)+2) + padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	y = r.DrawSectionHeader(p.x+padding, y, "Frame Phases")
	y = r.DrawLabelValue(p.x+padding, y, "tick", stats.AvgTickDuration.Round(time.Microsecond).String())

	for _, phase := range telemetry.Phases {
		color := rl.LightGray
		pct := stats.PhasePct[phase]
		if pct > 50 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			p.x+padding, y, r.Theme.FontSize, color,
		)
		y += lineHeight
	}
}
