package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// lookingAtOrigin is the camera shared by the texture showcase scenes
func lookingAtOrigin() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}
}

// NewCheckeredSpheresScene creates two large spheres sharing a solid checker texture
func NewCheckeredSpheresScene(opts Options) *Scene {
	s := newScene("checkered", lookingAtOrigin(), skyBackground())

	checker := material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.World.AddSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker))
	s.World.AddSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checker))

	return s
}

// NewEarthScene creates a single globe textured from earthmap.jpg in the asset
// directory. A missing file renders the globe cyan.
func NewEarthScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}
	s := newScene("earth", cameraConfig, skyBackground())

	earth := material.LoadImageTexture(opts.assetPath("earthmap.jpg"), opts.Logger)
	s.World.AddSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth))

	return s
}

// NewPerlinSpheresScene creates a ground sphere and a small sphere with marble noise
func NewPerlinSpheresScene(opts Options) *Scene {
	s := newScene("perlin", lookingAtOrigin(), skyBackground())

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(opts.Seed)))
	s.World.AddSphere(core.NewVec3(0, -1000, 0), 1000, marble)
	s.World.AddSphere(core.NewVec3(0, 2, 0), 2, marble)

	return s
}
