package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Each render worker owns its own Sampler; implementations need not be safe
// for concurrent use. Can be swapped out for deterministic testing.
type Sampler interface {
	// Get1D returns a uniform float64 in [0, 1)
	Get1D() float64
	// Range returns a uniform float64 in [min, max)
	Range(min, max float64) float64
	// Int returns a uniform integer in [min, max]
	Int(min, max int) int
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Range returns a random float64 in [min, max)
func (r *RandomSampler) Range(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// Int returns a random integer in [min, max]
func (r *RandomSampler) Int(min, max int) int {
	return min + r.random.Intn(max-min+1)
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// Uses the inverse CDF so a fixed sampler never loops.
func RandomUnitVector(sampler Sampler) Vec3 {
	z := 1.0 - 2.0*sampler.Get1D() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sampler.Get1D()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk returns a point in the unit disk on the XY plane using concentric mapping
func RandomInUnitDisk(sampler Sampler) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	ux := 2*sampler.Get1D() - 1
	uy := 2*sampler.Get1D() - 1
	if ux == 0 && uy == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(ux) > math.Abs(uy) {
		r = ux
		theta = math.Pi / 4 * (uy / ux)
	} else {
		r = uy
		theta = math.Pi/2 - math.Pi/4*(ux/uy)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(sampler.Range(min, max), sampler.Range(min, max), sampler.Range(min, max))
}
