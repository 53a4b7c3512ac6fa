package geometry

import (
	"github.com/samber/lo"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boxFace is one side of a box: a corner and two edges
type boxFace struct {
	corner, u, v core.Vec3
}

// NewBox returns the closed box spanned by two opposite corners as six quads.
// Face normals point outward.
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	pMin := core.MinVec(a, b)
	pMax := core.MaxVec(a, b)

	dx := core.NewVec3(pMax.X-pMin.X, 0, 0)
	dy := core.NewVec3(0, pMax.Y-pMin.Y, 0)
	dz := core.NewVec3(0, 0, pMax.Z-pMin.Z)

	faces := []boxFace{
		{core.NewVec3(pMin.X, pMin.Y, pMax.Z), dx, dy},          // front
		{core.NewVec3(pMax.X, pMin.Y, pMax.Z), dz.Negate(), dy}, // right
		{core.NewVec3(pMax.X, pMin.Y, pMin.Z), dx.Negate(), dy}, // back
		{core.NewVec3(pMin.X, pMin.Y, pMin.Z), dz, dy},          // left
		{core.NewVec3(pMin.X, pMax.Y, pMax.Z), dx, dz.Negate()}, // top
		{core.NewVec3(pMin.X, pMin.Y, pMin.Z), dx, dz},          // bottom
	}

	return NewHittableList(lo.Map(faces, func(f boxFace, _ int) Hittable {
		return NewQuad(f.corner, f.u, f.v, mat)
	})...)
}
