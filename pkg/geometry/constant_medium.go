package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitEpsilon separates the search for the exit crossing from the entry
const mediumExitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium (smoke, fog) filling a
// boundary shape. The boundary must be convex: a ray is assumed to cross it
// exactly twice, and a non-convex boundary will be sampled incorrectly.
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density and solid color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose scattering color comes from a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the segment of the ray inside the boundary and samples an
// exponential free-path distance. If the ray leaves the medium first it
// passes through untouched.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	// Search the whole line so rays starting inside the medium find their entry behind them
	entry, isHit := m.Boundary.Hit(ray, core.UniverseInterval(), sampler)
	if !isHit {
		return nil, false
	}

	exit, isHit := m.Boundary.Hit(ray, core.NewInterval(entry.T+mediumExitEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return nil, false
	}

	t1, t2 := entry.T, exit.T
	if t1 < rayT.Min {
		t1 = rayT.Min
	}
	if t2 > rayT.Max {
		t2 = rayT.Max
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		U:         entry.U,
		V:         exit.V,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
