package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/cli"
	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/game"
	"github.com/pthm-cable/boids/inspector"
	"github.com/pthm-cable/boids/renderer"
	"github.com/pthm-cable/boids/ui"
)

const controlsLegend = "[Space] pause  [Wheel/+/-] zoom  [Middle-drag] pan  [Home] reset view  [Click] inspect  [H] HUD  [Tab] panel  [F11] fullscreen"

func main() {
	r, err := cli.Setup(os.Args[0], os.Args[1:])
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer r.Close()

	if r.Flags.Headless {
		// Headless mode - pure CPU simulation, no raylib needed
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := r.RunHeadless(ctx); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindowed(r); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runWindowed opens a raylib window and drives the game once per frame.
func runWindowed(r *cli.Run) error {
	cfg := r.Config

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := r.NewGame()
	if err != nil {
		return err
	}
	defer g.Unload()
	g.SpawnFlock(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	meshes := renderer.NewMeshRenderer()
	hud := ui.NewHUD()
	panel := ui.NewControlsPanel(int32(cfg.Screen.Width)-230, 10, 220)
	perf := ui.NewPerfPanel(10, 80, 260)
	ins := inspector.NewInspector(int32(cfg.Screen.Height))
	showHUD := cfg.Render.ShowHUD
	initial := g.Limits()

	for !rl.WindowShouldClose() {
		if r.ApplyUpdates(g) {
			// Reset in the panel returns to the reloaded limits
			initial = g.Limits()
		}
		cfg = r.Config

		if rl.IsKeyPressed(rl.KeyH) {
			showHUD = !showHUD
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			panel.Toggle()
		}

		mouse := rl.GetMousePosition()
		ins.Resize(int32(rl.GetScreenHeight()))
		if !showHUD || !panel.Contains(mouse.X, mouse.Y) {
			ins.HandleInput(mouse.X, mouse.Y, g.Camera(), g.Flock())
		}

		in := renderer.HandleInput(g, float32(cfg.Render.ZoomStep))
		g.Frame(in)

		rl.BeginDrawing()
		rl.ClearBackground(renderer.ToRL(cfg.Derived.Background))
		meshes.Draw(g.Scene(), g.Camera())
		ins.DrawSelectionHighlight(g.Flock(), g.Camera())
		if showHUD {
			drawHUD(g, in, hud, perf, panel, initial)
			ins.Draw(g.Flock())
		}
		rl.EndDrawing()

		if r.Done(g.Tick()) {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}
	return nil
}

// drawHUD renders the overlay and applies any edits made in the panel.
func drawHUD(g *game.Game, in flock.Input, hud *ui.HUD, perf *ui.PerfPanel, panel *ui.ControlsPanel, initial flock.Limits) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	hud.Draw(ui.HUDData{
		Title:     g.Config().Screen.Title,
		Agents:    g.Flock().Len(),
		Tick:      g.Tick(),
		FPS:       rl.GetFPS(),
		Paused:    g.Paused(),
		Zoom:      g.Camera().Zoom,
		HasCursor: in.HasCursor,
	})
	perf.Draw(g.PerfStats())
	hud.DrawControls(screenH, controlsLegend)

	limits := g.Limits()
	before := ui.Controls{MaxSpeed: limits.MaxSpeed, MaxForce: limits.MaxForce, Paused: g.Paused()}
	panel.SetPosition(screenW-230, 10)
	after := panel.Draw(before)

	switch {
	case after.Reset:
		g.SetLimits(initial.MaxSpeed, initial.MaxForce)
	case after.Changed(before):
		g.SetLimits(after.MaxSpeed, after.MaxForce)
	}
	g.SetPaused(after.Paused)
}
