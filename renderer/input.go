package renderer

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/game"
)

// HandleInput processes window and camera controls, then returns the frame
// input for g: the window size and the cursor in window coordinates.
func HandleInput(g *game.Game, zoomStep float32) flock.Input {
	handleResize(g)

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}

	handleCameraInput(g, zoomStep)

	cam := g.Camera()
	mouse := rl.GetMousePosition()
	return flock.Input{
		Width:     cam.ViewportW,
		Height:    cam.ViewportH,
		Cursor:    cam.ScreenToWindow(mouse.X, mouse.Y),
		HasCursor: rl.IsCursorOnScreen(),
	}
}

// handleResize propagates a changed window size to the camera.
func handleResize(g *game.Game) {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	cam := g.Camera()
	if w == cam.ViewportW && h == cam.ViewportH {
		return
	}
	g.Resize(w, h)
}

// handleCameraInput processes zoom and pan controls.
func handleCameraInput(g *game.Game, zoomStep float32) {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.ZoomBy(math32.Pow(zoomStep, wheel))
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.ZoomBy(zoomStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.ZoomBy(1 / zoomStep)
	}

	// Middle-drag pans
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		g.Pan(-d.X, -d.Y)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.ResetCamera()
	}
}
