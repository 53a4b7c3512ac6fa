package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       600,
		AspectRatio: 1.0,  // Square aspect ratio for Cornell box
		VFov:        40.0, // Field of view
	}
}

// newCornellBox creates the five walls of the box. The light is left to the caller.
func newCornellBox(name string) *Scene {
	s := newScene(name, cornellCamera(), integrator.NewSolidBackground(core.NewVec3(0, 0, 0)))
	s.Sampling = renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Left wall (green) - YZ plane at x=boxSize
	s.World.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)
	// Right wall (red) - YZ plane at x=0
	s.World.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)
	// Floor
	s.World.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Ceiling
	s.World.AddQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white)
	// Back wall
	s.World.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)

	return s
}

// cornellBlocks returns the tall and short boxes, rotated and moved into place
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = tallBox.RotateY(15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = shortBox.RotateY(-18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellScene creates a classic Cornell box scene with quad walls, area
// lighting and two rotated blocks
func NewCornellScene(opts Options) *Scene {
	s := newCornellBox("cornell")

	s.AddQuadLight(
		core.NewVec3(343, boxSize-1, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.World.Add(tall)
	s.World.Add(short)

	return s
}

// NewCornellSmokeScene replaces the blocks with black smoke and white fog under
// a larger, dimmer light
func NewCornellSmokeScene(opts Options) *Scene {
	s := newCornellBox("cornell-smoke")

	s.AddQuadLight(
		core.NewVec3(113, boxSize-1, 127),
		core.NewVec3(330, 0, 0),
		core.NewVec3(0, 0, 305),
		core.NewVec3(7, 7, 7),
	)

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.World.AddMedium(tall, 0.01, core.NewVec3(0, 0, 0))
	s.World.AddMedium(short, 0.01, core.NewVec3(1, 1, 1))

	return s
}
