package material

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// Texture provides spatially-varying colors for materials.
// UV is used by image textures, the point by procedural ones.
type Texture interface {
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// ColorFromRGBA converts an 8-bit sRGB color to linear space
func ColorFromRGBA(c color.RGBA) core.Vec3 {
	return core.NewVec3(
		loaders.SRGBToLinear(float64(c.R)/255.0),
		loaders.SRGBToLinear(float64(c.G)/255.0),
		loaders.SRGBToLinear(float64(c.B)/255.0),
	)
}

// NamedColor looks up an SVG color name ("cyan", "firebrick", ...) as a linear color
func NamedColor(name string) (core.Vec3, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return core.Vec3{}, errors.Errorf("unknown color name %q", name)
	}
	return ColorFromRGBA(c), nil
}

// CheckerTexture alternates two textures on a 3D grid of cubes of side 1/InvScale
type CheckerTexture struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a checker texture with cells of the given size
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewSolidCheckerTexture creates a checker texture alternating two solid colors
func NewSolidCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks Even or Odd by the parity of the cell containing point
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, point)
	}
	return c.Odd.Value(u, v, point)
}
