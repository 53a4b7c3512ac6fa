package core

import "fmt"

// minAABBThickness is the smallest extent an AABB axis may have after padding
const minAABBThickness = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// EmptyAABB returns a box containing nothing, the identity for UnionAABB
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// UniverseAABB returns a box containing all of space
func UniverseAABB() AABB {
	return AABB{X: UniverseInterval(), Y: UniverseInterval(), Z: UniverseInterval()}
}

// NewAABBFromPoints creates the box spanned by two opposite corners given in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	axis := func(p, q float64) Interval {
		if p <= q {
			return Interval{Min: p, Max: q}
		}
		return Interval{Min: q, Max: p}
	}
	return AABB{
		X: axis(a.X, b.X),
		Y: axis(a.Y, b.Y),
		Z: axis(a.Z, b.Z),
	}
}

// UnionAABB returns the box enclosing both a and b
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: UnionIntervals(a.X, b.X),
		Y: UnionIntervals(a.Y, b.Y),
		Z: UnionIntervals(a.Z, b.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return UnionAABB(aabb, other)
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z).
// Any other index is a programming error and panics.
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic(fmt.Sprintf("core: invalid AABB axis %d", n))
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties resolve toward the later axis: x vs z first, then y vs z.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Hit runs the slab test against the whole ray line and returns the parametric
// interval spent inside the box.
func (aabb AABB) Hit(ray Ray) (Interval, bool) {
	return aabb.HitWithin(ray, UniverseInterval())
}

// HitWithin runs the slab test starting from rayT. Zero direction components are
// left to IEEE-754: 1/0 gives ±Inf and NaN slab bounds never narrow the interval.
func (aabb AABB) HitWithin(ray Ray, rayT Interval) (Interval, bool) {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv
		if adinv < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return rayT, false
		}
	}
	return rayT, true
}

// PadToMinimums widens any axis thinner than 1e-4 to exactly that thickness,
// so planar primitives still produce a usable slab.
func (aabb AABB) PadToMinimums() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < minAABBThickness {
			return i.Expand(minAABBThickness - i.Size())
		}
		return i
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Offset returns the box translated by v
func (aabb AABB) Offset(v Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(v.X),
		Y: aabb.Y.Offset(v.Y),
		Z: aabb.Z.Offset(v.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	return 2.0 * (x*y + y*z + z*x)
}
