package ebitenhost

import (
	"image/color"

	"github.com/pthm-cable/boids/mesh"
)

func toRGBA(c mesh.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
