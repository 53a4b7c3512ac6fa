package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSimpleLightScene creates two noise spheres lit only by emitters
func NewSimpleLightScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}
	s := newScene("simple-light", cameraConfig, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(opts.Seed)))
	s.World.AddSphere(core.NewVec3(0, -1000, 0), 1000, marble)
	s.World.AddSphere(core.NewVec3(0, 2, 0), 2, marble)

	s.AddQuadLight(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), core.NewVec3(4, 4, 4))
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, core.NewVec3(4, 4, 4))

	return s
}

// NewFinalScene combines every feature: a field of boxes, a ceiling light, a
// moving sphere, glass with a subsurface medium, global mist, textures and an
// instanced cluster of small spheres
func NewFinalScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
	s := newScene("final", cameraConfig, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)))
	s.Sampling = renderer.SamplingConfig{SamplesPerPixel: 250, MaxDepth: 4}
	sampler := core.NewSeededSampler(opts.Seed)

	// Ground: a 20x20 grid of boxes with random heights, kept in their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := sampler.Range(1, 101)
			boxes.AddBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground)
		}
	}
	s.World.Add(boxes.CreateBVH())

	s.AddQuadLight(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), core.NewVec3(7, 7, 7))

	start := core.NewVec3(400, 400, 200)
	s.World.AddMovingSphere(start, start.Add(core.NewVec3(30, 0, 0)), 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)))

	s.World.AddSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5))
	s.World.AddSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0))

	// Blue subsurface sphere: glass shell filled with a dense medium
	boundary := s.World.AddSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.World.AddMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.World.AddMedium(mist, 0.0001, core.NewVec3(1, 1, 1))

	earth := material.LoadImageTexture(opts.assetPath("earthmap.jpg"), opts.Logger)
	s.World.AddSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth))

	noise := material.NewNoiseTexture(0.2, sampler)
	s.World.AddSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise))

	// Cluster of small white spheres, built in a local frame and instanced
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for n := 0; n < 1000; n++ {
		cluster.AddSphere(core.RandomVec3(sampler, 0, 165), 10, white)
	}
	rotated := geometry.NewRotateY(cluster.CreateBVH(), 15)
	s.World.Add(geometry.NewTranslate(rotated, core.NewVec3(-100, 270, 395)))

	return s
}
