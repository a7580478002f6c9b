// Circle mesh demo - a static coral disc drawn from a triangle fan.
//
// Usage: go run ./cmd/circle [-config path] [-panel]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/camera"
	"github.com/pthm-cable/boids/components"
	"github.com/pthm-cable/boids/config"
	"github.com/pthm-cable/boids/mesh"
	"github.com/pthm-cable/boids/renderer"
	"github.com/pthm-cable/boids/scene"
)

const panelWidth = 240

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	showPanel := flag.Bool("panel", false, "Show sliders for vertex count and scale")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config.MustInit(*configPath)
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title+" - circle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	vertices := cfg.Circle.Vertices
	scale := float32(cfg.Circle.Scale)

	s := scene.New()
	disc := mesh.Circle(vertices, cfg.Derived.CircleColor)
	entity := s.AddStatic(disc, components.Transform{}, scale, scene.LayerBackground)
	cam := camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	meshes := renderer.NewMeshRenderer()

	slog.Info("circle scene ready", "vertices", vertices, "scale", scale, "triangles", disc.TriangleCount())

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}

		rl.BeginDrawing()
		rl.ClearBackground(renderer.ToRL(cfg.Derived.Background))
		meshes.Draw(s, cam)

		if *showPanel {
			panelX := float32(10)
			panelY := float32(10)

			rl.DrawText("Rim vertices", int32(panelX), int32(panelY), 14, rl.RayWhite)
			panelY += 18
			newVertices := int(gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
				"", "",
				float32(vertices), 3, 128,
			))
			rl.DrawText(fmt.Sprintf("%d", vertices), int32(panelX+panelWidth-50), int32(panelY+2), 16, rl.RayWhite)
			panelY += 35

			rl.DrawText("Scale", int32(panelX), int32(panelY), 14, rl.RayWhite)
			panelY += 18
			newScale := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
				"", "",
				scale, 10, 300,
			)
			rl.DrawText(fmt.Sprintf("%.0f", scale), int32(panelX+panelWidth-50), int32(panelY+2), 16, rl.RayWhite)

			if newVertices != vertices || newScale != scale {
				vertices = newVertices
				scale = newScale
				*disc = *mesh.Circle(vertices, cfg.Derived.CircleColor)
				s.SetRenderable(entity, components.Renderable{Mesh: disc, Scale: scale, Layer: scene.LayerBackground})
			}
		}

		rl.EndDrawing()
	}
}
