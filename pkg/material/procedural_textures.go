package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseTexture is a marble-like pattern: a sine along z phase-shifted by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture; scale sets the stripe frequency
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Value returns a grey level in [0, 1]
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	grey := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, 7)))
	return core.NewVec3(grey, grey, grey)
}
