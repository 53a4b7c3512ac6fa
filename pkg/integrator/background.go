package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background is the radiance returned for rays that leave the scene.
// Colors blend linearly on the ray's unit Y component; equal ends give a constant.
type Background struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) Background {
	return Background{Bottom: color, Top: color}
}

// NewGradientBackground creates a vertical sky gradient
func NewGradientBackground(bottom, top core.Vec3) Background {
	return Background{Bottom: bottom, Top: top}
}

// Color returns the background radiance for a ray that missed everything
func (b Background) Color(ray core.Ray) core.Vec3 {
	if b.Bottom == b.Top {
		return b.Top
	}

	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
