package renderer

import (
	"soft-render/core"
	"soft-render/math"
)

// DirectionalLight is an infinitely distant light source. Direction points
// from the light toward the scene.
type DirectionalLight struct {
	Direction math.Vec3
	Color     core.Color
	Intensity float32
	Ambient   float32
}

// DefaultLight returns a white light angled down from the upper left,
// matching the usual three-quarter key light.
func DefaultLight() DirectionalLight {
	return DirectionalLight{
		Direction: math.Vec3{X: 0.5, Y: -1, Z: -0.5}.Normalize(),
		Color:     core.ColorWhite,
		Intensity: 0.8,
		Ambient:   0.2,
	}
}

// Shade computes the lit color of a vertex with the given world-space
// normal. Lambert diffuse plus a flat ambient floor; evaluated per vertex
// and interpolated across the triangle by the rasterizer.
func (l DirectionalLight) Shade(base core.Color, worldNormal math.Vec3) core.Color {
	lambert := worldNormal.Dot(l.Direction.Negate())
	if lambert < 0 {
		lambert = 0
	}
	factor := l.Ambient + lambert*l.Intensity
	if factor > 1 {
		factor = 1
	}
	lit := base.Modulate(l.Color).Scale(factor)
	lit.A = base.A
	return lit
}
