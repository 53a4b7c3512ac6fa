package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// skyBackground is the white-to-blue gradient used by the daylight scenes
func skyBackground() integrator.Background {
	return integrator.NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// NewQuickScene creates the small five-sphere scene: a huge ground sphere,
// a diffuse center sphere, a hollow glass sphere and a fuzzy gold sphere
func NewQuickScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}

	s := newScene("quick", cameraConfig, skyBackground())

	groundMaterial := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMaterial := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5) // air inside glass
	fuzzyGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.World.AddSphere(core.NewVec3(0, -100.5, -1), 100, groundMaterial)
	s.World.AddSphere(core.NewVec3(0, 0, -1.2), 0.5, centerMaterial)
	s.World.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.World.AddSphere(core.NewVec3(-1, 0, -1), 0.4, bubble)
	s.World.AddSphere(core.NewVec3(1, 0, -1), 0.5, fuzzyGold)

	return s
}

// NewBouncingSpheresScene creates a field of small random spheres, the diffuse
// ones bouncing upward during the shutter interval, around three large spheres
func NewBouncingSpheresScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}

	s := newScene("bouncing", cameraConfig, skyBackground())
	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.World.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker))

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				end := center.Add(core.NewVec3(0, sampler.Range(0, 0.5), 0))
				s.World.AddMovingSphere(center, end, 0.2, material.NewLambertian(albedo))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := sampler.Range(0, 0.5)
				s.World.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				s.World.AddSphere(center, 0.2, material.NewDielectric(1.5))
			}
		}
	}

	s.World.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	s.World.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.World.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s
}

// NewQuadsScene creates five colored quads arranged as an open box around the view
func NewQuadsScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 9),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        80.0,
	}

	s := newScene("quads", cameraConfig, skyBackground())

	named := func(name string) material.Material {
		c, err := material.NamedColor(name)
		if err != nil {
			panic(err) // names below are fixed
		}
		return material.NewLambertian(c)
	}

	s.World.AddQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), named("tomato"))
	s.World.AddQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), named("limegreen"))
	s.World.AddQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), named("royalblue"))
	s.World.AddQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), named("orange"))
	s.World.AddQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), named("mediumturquoise"))

	return s
}
