package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts an OKLCH color (lightness 0-1, chroma, hue in degrees)
// to linear RGB clamped to [0, 1]
func oklchToRGB(lightness, chroma, hue float64) core.Vec3 {
	hRad := core.DegreesToRadians(hue)
	a := chroma * math.Cos(hRad)
	b := chroma * math.Sin(hRad)

	// OKLab to cone responses, then cube
	cube := func(x float64) float64 { return x * x * x }
	lms := core.NewVec3(
		cube(lightness+0.3963377774*a+0.2158037573*b),
		cube(lightness-0.1055613458*a-0.0638541728*b),
		cube(lightness-0.0894841775*a-1.2914855480*b),
	)

	rgb := core.NewVec3(
		4.0767416621*lms.X-3.3077115913*lms.Y+0.2309699292*lms.Z,
		-1.2684380046*lms.X+2.6097574011*lms.Y-0.3413193965*lms.Z,
		-0.0041960863*lms.X-0.7034186147*lms.Y+1.7076147010*lms.Z,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a grid of metal spheres colored across
// OKLCH hue and chroma
func NewSphereGridScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(4.5, 6, 18),    // Position camera farther back and slightly lower
		LookAt:        core.NewVec3(4.5, 0.8, 4.5), // Look at center of grid, slightly lower
		Up:            core.NewVec3(0, 1, 0),       // Standard up direction
		Width:         800,
		AspectRatio:   16.0 / 9.0, // 16:9 aspect ratio
		VFov:          40.0,       // Slightly narrower field of view for better framing
		DefocusAngle:  0.1,        // Small depth of field for some focus variation
		FocusDistance: 0.0,        // Auto-calculate focus distance
	}

	s := newScene("sphere-grid", cameraConfig, skyBackground())
	s.Sampling = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 40}

	// Add environmental lighting - a bright sun-like light
	s.AddSphereLight(
		core.NewVec3(20, 25, 20),       // position (high and to the side)
		8,                              // radius
		core.NewVec3(12.0, 11.5, 10.0), // warm white emission
	)

	// Ground (gray lambertian)
	s.World.Add(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	addSphereGrid(s, 20, 9.0, core.NewVec3(4.5, 0, 4.5))
	return s
}

// addSphereGrid lays out gridSize² metal spheres over a square of side extent
// centered at center. Hue varies along x, chroma along z.
func addSphereGrid(s *Scene, gridSize int, extent float64, center core.Vec3) {
	const (
		lightness = 0.65
		minChroma = 0.05
		maxChroma = 0.25
	)
	spacing := extent / float64(gridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))
	corner := center.Subtract(core.NewVec3(extent/2, 0, extent/2))

	for i := 0; i < gridSize; i++ {
		fx := float64(i) / float64(gridSize-1)
		for j := 0; j < gridSize; j++ {
			fz := float64(j) / float64(gridSize-1)
			position := corner.Add(core.NewVec3(fx*extent, radius, fz*extent))

			albedo := oklchToRGB(
				lightness+0.1*math.Sin(float64(i+j)*0.5),
				minChroma+fz*(maxChroma-minChroma),
				fx*360.0,
			)
			fuzz := 0.05 + 0.05*float64((i+j)%3)
			s.World.AddSphere(position, radius, material.NewMetal(albedo, fuzz))
		}
	}
}
