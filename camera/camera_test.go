package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720)

	// Should be centered on the world origin
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at (0, 0), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720)

	// World origin maps to screen center
	sx, sy := cam.WorldToScreen(0, 0)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestWorldIsYUp(t *testing.T) {
	cam := New(1280, 720)

	// Positive world Y is above the center, i.e. a smaller screen Y
	_, sy := cam.WorldToScreen(0, 100)
	if sy != 260 {
		t.Errorf("expected screen y 260, got %f", sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720)
	cam.SetZoom(1.7)
	cam.Pan(35, -12)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenToWindowDefaultIsFlip(t *testing.T) {
	cam := New(800, 600)

	testCases := []struct{ sx, sy, wantX, wantY float32 }{
		{0, 0, 0, 600},       // top-left pixel is the window's top edge
		{400, 300, 400, 300}, // center
		{800, 600, 800, 0},   // bottom-right
	}

	for _, tc := range testCases {
		p := cam.ScreenToWindow(tc.sx, tc.sy)
		if p.X != tc.wantX || p.Y != tc.wantY {
			t.Errorf("ScreenToWindow(%v, %v) = %v, want (%v, %v)", tc.sx, tc.sy, p, tc.wantX, tc.wantY)
		}
	}
}

func TestScreenToWindowMatchesWorldUnderZoom(t *testing.T) {
	cam := New(800, 600)
	cam.SetZoom(2)
	cam.Pan(100, 50)

	sx, sy := float32(123), float32(456)
	p := cam.ScreenToWindow(sx, sy)
	wx, wy := cam.ScreenToWorld(sx, sy)

	// Subtracting half the viewport recovers the world point under the cursor
	if math.Abs(float64(p.X-400-wx)) > 0.001 || math.Abs(float64(p.Y-300-wy)) > 0.001 {
		t.Errorf("window %v does not map to world (%f, %f)", p, wx, wy)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720)

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}

	cam.SetZoom(1)
	cam.ZoomBy(2)
	if cam.Zoom != 2 {
		t.Errorf("expected zoom 2, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720)

	// Visible range in world coords: (-640, -360) to (640, 360)
	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(1000, 500, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(-700, 0, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(800, 600)
	cam.SetZoom(2)

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX != -200 || maxX != 200 || minY != -150 || maxY != 150 {
		t.Errorf("unexpected bounds (%f, %f)-(%f, %f)", minX, minY, maxX, maxY)
	}
}

func TestContains(t *testing.T) {
	cam := New(800, 600)
	if !cam.Contains(0, 0) || !cam.Contains(799, 599) {
		t.Error("expected corners inside viewport")
	}
	if cam.Contains(-1, 10) || cam.Contains(10, 600) {
		t.Error("expected outside points rejected")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected position (0, 0), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestPan(t *testing.T) {
	cam := New(800, 600)
	cam.SetZoom(2)

	// Screen pixels shrink to world units under zoom; screen y runs down
	cam.Pan(100, 40)
	if cam.X != 50 || cam.Y != -20 {
		t.Errorf("expected camera at (50, -20), got (%f, %f)", cam.X, cam.Y)
	}

	// The world point at the viewport center follows the camera
	wx, wy := cam.ScreenToWorld(400, 300)
	if wx != 50 || wy != -20 {
		t.Errorf("expected center at (50, -20), got (%f, %f)", wx, wy)
	}

	minX, _, maxX, _ := cam.VisibleWorldBounds()
	if minX != -150 || maxX != 250 {
		t.Errorf("unexpected x bounds after pan: %f..%f", minX, maxX)
	}
}
