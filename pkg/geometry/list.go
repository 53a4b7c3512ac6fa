package geometry

import (
	"github.com/samber/lo"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat collection of hittables searched linearly.
// It is also the build-time API for scenes: collect objects here, then call CreateBVH.
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB()}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the cached bounding box. A zero-value list
// starts from the empty box.
func (l *HittableList) Add(object Hittable) {
	if len(l.Objects) == 0 {
		l.bbox = core.EmptyAABB()
	}
	l.Objects = append(l.Objects, object)
	l.bbox = core.UnionAABB(l.bbox, object.BoundingBox())
}

// AddSphere adds a static sphere
func (l *HittableList) AddSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	sphere := NewSphere(center, radius, mat)
	l.Add(sphere)
	return sphere
}

// AddMovingSphere adds a sphere moving from start to end over the shutter interval
func (l *HittableList) AddMovingSphere(start, end core.Vec3, radius float64, mat material.Material) *Sphere {
	sphere := NewMovingSphere(start, end, radius, mat)
	l.Add(sphere)
	return sphere
}

// AddQuad adds a parallelogram
func (l *HittableList) AddQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	quad := NewQuad(corner, u, v, mat)
	l.Add(quad)
	return quad
}

// AddBox adds a closed axis-aligned box as a single child and returns it
func (l *HittableList) AddBox(a, b core.Vec3, mat material.Material) *HittableList {
	box := NewBox(a, b, mat)
	l.Add(box)
	return box
}

// AddMedium adds a constant-density volume of the given color filling boundary
func (l *HittableList) AddMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	medium := NewConstantMedium(boundary, density, albedo)
	l.Add(medium)
	return medium
}

// Append moves every object of other into this list
func (l *HittableList) Append(other *HittableList) {
	for _, object := range other.Objects {
		l.Add(object)
	}
}

// Translate wraps the whole list in a translation
func (l *HittableList) Translate(offset core.Vec3) *Translate {
	return NewTranslate(l, offset)
}

// RotateY wraps the whole list in a rotation about the Y axis (degrees)
func (l *HittableList) RotateY(angle float64) *RotateY {
	return NewRotateY(l, angle)
}

// CreateBVH builds a BVH over the list's objects. The list itself is not modified.
// Panics if the list is empty.
func (l *HittableList) CreateBVH() *BVHNode {
	return NewBVHNode(l.Objects)
}

// Len returns the number of direct children
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all children's boxes (empty for an empty list)
func (l *HittableList) BoundingBox() core.AABB {
	if len(l.Objects) == 0 {
		return core.EmptyAABB()
	}
	return l.bbox
}

// unionBoundingBoxes returns the box enclosing every object
func unionBoundingBoxes(objects []Hittable) core.AABB {
	return lo.Reduce(objects, func(acc core.AABB, object Hittable, _ int) core.AABB {
		return core.UnionAABB(acc, object.BoundingBox())
	}, core.EmptyAABB())
}
