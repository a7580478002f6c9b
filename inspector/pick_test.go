package inspector

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/boids/flock"
	"github.com/pthm-cable/boids/geom"
)

func TestPick(t *testing.T) {
	f := flock.New(flock.Limits{MaxSpeed: 1, MaxForce: 0.25}, rand.New(rand.NewSource(1)))
	f.Add(geom.V(0, 0))
	f.Add(geom.V(100, 0))
	f.Add(geom.V(105, 0))

	tests := []struct {
		name   string
		p      geom.Vec2
		want   flock.Handle
		wantOK bool
	}{
		{"exact hit", geom.V(0, 0), 0, true},
		{"within radius", geom.V(5, 5), 0, true},
		{"closest of two", geom.V(104, 1), 2, true},
		{"miss", geom.V(50, 50), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pick(f, tt.p, HitRadius)
			if ok != tt.wantOK {
				t.Fatalf("Pick() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Pick() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectDeselect(t *testing.T) {
	ins := NewInspector(720)
	if _, ok := ins.Selected(); ok {
		t.Fatal("new inspector should have no selection")
	}

	ins.Select(3)
	if h, ok := ins.Selected(); !ok || h != 3 {
		t.Errorf("Selected() = %d, %v; want 3, true", h, ok)
	}

	ins.Deselect()
	if _, ok := ins.Selected(); ok {
		t.Error("selection should be cleared")
	}
}
