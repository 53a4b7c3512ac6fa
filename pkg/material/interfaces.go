package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material is the closed set of surface and volume responses:
// *Lambertian, *Metal, *Dielectric, *Isotropic and *DiffuseLight.
// Materials are immutable once built and may be shared by any number of primitives.
type Material interface {
	// Scatter decides whether rayIn continues after the hit, and if so in which
	// direction and with what attenuation. false means the ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit; zero for non-emitters
	Emitted(u, v float64, point core.Vec3) core.Vec3

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The continuation ray
	Attenuation core.Vec3 // Color attenuation applied to the continuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, oriented against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates
	Material  Material  // Material of the hit object
	FrontFace bool      // Whether the ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmissive supplies the zero emission shared by every material except DiffuseLight
type nonEmissive struct{}

func (nonEmissive) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (nonEmissive) isMaterial() {}
