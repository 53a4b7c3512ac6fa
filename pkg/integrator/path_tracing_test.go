package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// createTestWorld creates a lambertian sphere above a large ground quad
func createTestWorld() geometry.Hittable {
	world := geometry.NewHittableList()
	world.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	world.AddQuad(core.NewVec3(-50, -0.5, -50), core.NewVec3(100, 0, 0), core.NewVec3(0, 0, 100),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	return world.CreateBVH()
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	sampler := core.NewSeededSampler(42)
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))

	// Ray pointing at the sphere
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, depth := range []int{0, -1} {
		if color := integrator.RayColor(ray, world, depth, sampler); color != (core.Vec3{}) {
			t.Errorf("Expected black color for depth %d, got %v", depth, color)
		}
	}

	// A miss at depth 0 is still black: the budget check comes first
	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if color := integrator.RayColor(up, world, 0, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black for exhausted budget, got %v", color)
	}

	if color := integrator.RayColor(ray, world, 10, sampler); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackground(t *testing.T) {
	bottom := core.NewVec3(1, 1, 1)
	top := core.NewVec3(0.5, 0.7, 1.0)

	tests := []struct {
		name       string
		background Background
		direction  core.Vec3
		expected   core.Vec3
	}{
		{"solid", NewSolidBackground(core.NewVec3(0.2, 0.3, 0.4)), core.NewVec3(1, 2, 3), core.NewVec3(0.2, 0.3, 0.4)},
		{"gradient up", NewGradientBackground(bottom, top), core.NewVec3(0, 1, 0), top},
		{"gradient down", NewGradientBackground(bottom, top), core.NewVec3(0, -5, 0), bottom},
		{"gradient horizon", NewGradientBackground(bottom, top), core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	world := geometry.NewHittableList()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := NewPathTracingIntegrator(tt.background)
			color := integrator.RayColor(core.NewRay(core.Vec3{}, tt.direction), world, 5, core.NewSeededSampler(1))
			if math.Abs(color.X-tt.expected.X) > 1e-9 || math.Abs(color.Y-tt.expected.Y) > 1e-9 || math.Abs(color.Z-tt.expected.Z) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingEmissionOnly(t *testing.T) {
	world := geometry.NewHittableList()
	world.AddQuad(core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		material.NewDiffuseLight(core.NewVec3(4, 5, 6)))
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))

	// Lights absorb: the result is the emission alone, background never reached
	color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, 1, core.NewSeededSampler(1))
	if color != core.NewVec3(4, 5, 6) {
		t.Errorf("Expected emission (4,5,6), got %v", color)
	}
}

func TestPathTracingSingleBounce(t *testing.T) {
	// Upward-facing diffuse ground under a white sky: every scattered ray escapes
	world := geometry.NewHittableList()
	world.AddQuad(core.NewVec3(-100, 0, -100), core.NewVec3(0, 0, 200), core.NewVec3(200, 0, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.25, 0.125)))
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(7)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.3, -1, 0.2))

	// Depth 1 spends its only bounce on the ground
	if color := integrator.RayColor(ray, world, 1, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black with depth 1, got %v", color)
	}

	for i := 0; i < 100; i++ {
		color := integrator.RayColor(ray, world, 2, sampler)
		if color != core.NewVec3(0.5, 0.25, 0.125) {
			t.Fatalf("Expected albedo times sky (0.5,0.25,0.125), got %v", color)
		}
	}
}

func TestPathTracingMirror(t *testing.T) {
	world := geometry.NewHittableList()
	world.AddQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0),
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.4), 0))
	integrator := NewPathTracingIntegrator(NewGradientBackground(core.Vec3{}, core.NewVec3(1, 1, 1)))

	// Straight down reflects straight up into the top of the gradient
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), world, 3, core.NewSeededSampler(3))
	expected := core.NewVec3(0.8, 0.6, 0.4)
	if math.Abs(color.X-expected.X) > 1e-9 || math.Abs(color.Y-expected.Y) > 1e-9 || math.Abs(color.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestPathTracingClosedBoxIsDark(t *testing.T) {
	// No light inside a closed diffuse box, so the bright sky never contributes
	world := geometry.NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1),
		material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))).CreateBVH()
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(10, 10, 10)))
	sampler := core.NewSeededSampler(11)

	for i := 0; i < 200; i++ {
		direction := core.RandomUnitVector(sampler)
		color := integrator.RayColor(core.NewRay(core.Vec3{}, direction), world, 8, sampler)
		if color != (core.Vec3{}) {
			t.Fatalf("Expected black inside closed box, got %v", color)
		}
	}
}

func TestPathTracingBoundedByBackground(t *testing.T) {
	sampler := core.NewSeededSampler(5)

	// Mixed non-emissive materials cannot add energy
	world := geometry.NewHittableList()
	world.AddQuad(core.NewVec3(-20, -1, -20), core.NewVec3(0, 0, 40), core.NewVec3(40, 0, 0),
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8)))
	world.AddSphere(core.NewVec3(-1.2, 0, -2), 0.5, material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.3))
	world.AddSphere(core.NewVec3(0, 0, -2), 0.5, material.NewDielectric(1.5))
	world.AddSphere(core.NewVec3(1.2, 0, -2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.9)))
	world.AddMedium(geometry.NewSphere(core.NewVec3(0, 1, -3), 0.8, nil), 1.5, core.NewVec3(0.7, 0.7, 0.7))
	bvh := world.CreateBVH()

	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))
	for i := 0; i < 2000; i++ {
		direction := core.NewVec3(sampler.Range(-1, 1), sampler.Range(-0.6, 0.6), -1)
		color := integrator.RayColor(core.NewRay(core.Vec3{}, direction), bvh, 20, sampler)
		if color.X < 0 || color.Y < 0 || color.Z < 0 ||
			color.X > 1+1e-9 || color.Y > 1+1e-9 || color.Z > 1+1e-9 {
			t.Fatalf("Color %v outside [0, background]", color)
		}
	}
}
