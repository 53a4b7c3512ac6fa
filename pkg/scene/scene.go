package scene

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      *geometry.HittableList  // Objects as built
	Camera     renderer.CameraConfig   // Recommended camera
	Sampling   renderer.SamplingConfig // Recommended quality
	Background integrator.Background   // Radiance for escaping rays
	BVH        *geometry.BVHNode       // Built by Preprocess
}

// Options carries the inputs scene builders share
type Options struct {
	Logger   core.Logger // Receives asset warnings; nil is silent
	AssetDir string      // Directory searched for image textures
	Seed     int64       // Seed for randomized layouts and noise
}

// DefaultOptions returns options that load assets from ./assets
func DefaultOptions() Options {
	return Options{
		AssetDir: "assets",
		Seed:     42,
	}
}

// assetPath resolves a texture file name against the asset directory
func (o Options) assetPath(name string) string {
	return filepath.Join(o.AssetDir, name)
}

// newScene creates an empty scene with default quality settings
func newScene(name string, camera renderer.CameraConfig, background integrator.Background) *Scene {
	return &Scene{
		Name:       name,
		World:      geometry.NewHittableList(),
		Camera:     camera,
		Sampling:   renderer.DefaultSamplingConfig(),
		Background: background,
	}
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	// Create corner at bottom-left of the quad
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// Edge vectors: u along Z axis, v along X axis
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0) which normalizes to (0,1,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// Preprocess prepares the scene for rendering by building the BVH once.
// The world must not change afterwards.
func (s *Scene) Preprocess() error {
	if s.World == nil || s.World.Len() == 0 {
		return errors.Errorf("scene %q has no objects", s.Name)
	}
	s.BVH = s.World.CreateBVH()
	return nil
}

// Root returns the hittable the integrator should trace against
func (s *Scene) Root() geometry.Hittable {
	if s.BVH != nil {
		return s.BVH
	}
	return s.World
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return countPrimitives(s.World)
}

// countPrimitives counts spheres and quads beneath a hittable, looking through
// containers and wrappers
func countPrimitives(object geometry.Hittable) int {
	switch obj := object.(type) {
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects {
			count += countPrimitives(child)
		}
		return count
	case *geometry.BVHNode:
		count := countPrimitives(obj.Left)
		if obj.Right != nil {
			count += countPrimitives(obj.Right)
		}
		return count
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	case *geometry.ConstantMedium:
		return countPrimitives(obj.Boundary)
	default:
		// Sphere or Quad
		return 1
	}
}

// AddSphereLight adds a spherical emitter to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.World.AddSphere(center, radius, material.NewDiffuseLight(emission))
}

// AddQuadLight adds a rectangular area emitter to the scene
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) {
	s.World.AddQuad(corner, u, v, material.NewDiffuseLight(emission))
}
