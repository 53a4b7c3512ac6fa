package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect. The set of implementations is closed:
// *Sphere, *Quad, *BVHNode, *HittableList, *Translate, *RotateY and *ConstantMedium.
//
// Hittables are immutable after construction and safe to share between goroutines.
// Composite hittables may reference the same child more than once.
type Hittable interface {
	// Hit returns the nearest intersection with t inside rayT.
	// The sampler is consumed only by volumetric objects.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns the box computed at construction
	BoundingBox() core.AABB

	isHittable()
}

func (*Sphere) isHittable()         {}
func (*Quad) isHittable()           {}
func (*BVHNode) isHittable()        {}
func (*HittableList) isHittable()   {}
func (*Translate) isHittable()      {}
func (*RotateY) isHittable()        {}
func (*ConstantMedium) isHittable() {}
