package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PlanarShape selects which region of a Quad's plane counts as a hit.
// The region is tested in the plane's (alpha, beta) coordinates, where the
// corner is (0,0), Corner+U is (1,0) and Corner+V is (0,1). New convex planar
// shapes only need a new case in contains.
type PlanarShape int

const (
	// Parallelogram accepts alpha and beta both in [0,1]
	Parallelogram PlanarShape = iota
	// Triangle accepts the half of the parallelogram below the U-V diagonal
	Triangle
)

func (s PlanarShape) contains(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	switch s {
	case Triangle:
		return alpha >= 0 && beta >= 0 && alpha+beta <= 1
	default:
		return unit.Contains(alpha) && unit.Contains(beta)
	}
}

// Quad represents a planar surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Shape    PlanarShape
	Material material.Material

	normal core.Vec3 // Unit normal (U × V direction)
	d      float64   // Plane equation constant: normal · p = d
	w      core.Vec3 // n / (n·n), projects hit points onto (alpha, beta)
	bbox   core.AABB
}

// NewQuad creates a new parallelogram from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	return newPlanar(corner, u, v, Parallelogram, mat)
}

// NewTriangle creates the triangle with vertices corner, corner+u and corner+v
func NewTriangle(corner, u, v core.Vec3, mat material.Material) *Quad {
	return newPlanar(corner, u, v, Triangle, mat)
}

func newPlanar(corner, u, v core.Vec3, shape PlanarShape, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Box over both diagonals, padded so the flat shape still has volume
	diag1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diag2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Shape:    shape,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Divide(n.Dot(n)),
		bbox:     core.UnionAABB(diag1, diag2).PadToMinimums(),
	}
}

// Normal returns the unit plane normal
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := q.normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	if !q.Shape.contains(alpha, beta) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.normal)

	return hitRecord, true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
