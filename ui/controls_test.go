package ui

import "testing"

func TestControlsChanged(t *testing.T) {
	base := Controls{MaxSpeed: 1, MaxForce: 0.25}

	tests := []struct {
		name  string
		other Controls
		want  bool
	}{
		{"identical", base, false},
		{"pause only", Controls{MaxSpeed: 1, MaxForce: 0.25, Paused: true}, false},
		{"speed", Controls{MaxSpeed: 2, MaxForce: 0.25}, true},
		{"force", Controls{MaxSpeed: 1, MaxForce: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Changed(tt.other); got != tt.want {
				t.Errorf("Changed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleText(t *testing.T) {
	if got := toggleText(true, "Resume", "Pause"); got != "Resume" {
		t.Errorf("toggleText(true) = %q", got)
	}
	if got := toggleText(false, "Resume", "Pause"); got != "Pause" {
		t.Errorf("toggleText(false) = %q", got)
	}
}

func TestControlsPanelContains(t *testing.T) {
	// 220 wide; 7 lines of 16 plus 10 padding top and bottom is 132 tall
	p := NewControlsPanel(10, 20, 220)

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"top left corner", 10, 20, true},
		{"inside", 120, 100, true},
		{"left of panel", 9, 100, false},
		{"right edge", 230, 100, false},
		{"below panel", 120, 152, false},
		{"last row", 120, 151, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	p.Toggle()
	if p.Contains(120, 100) {
		t.Error("hidden panel should not contain points")
	}
}
