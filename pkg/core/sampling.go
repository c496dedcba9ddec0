package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for the estimators.
// Can be swapped out for deterministic testing or different sampling patterns.
// A Sampler is not safe for concurrent use; give each goroutine its own.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the hemisphere around normal
// using Malley's method: a uniform disk sample projected up onto the hemisphere.
func SampleCosineHemisphere(normal Normal, sample Vec2) Vec3 {
	// Polar angle from the normal; sin(g) = sqrt(u) is the disk radius
	g := math.Asin(math.Sqrt(sample.X))
	phi := 2.0 * math.Pi * sample.Y

	n := normal.Vec()

	// Orthonormal basis around the normal
	tangent := n.AnyOrthonormal()
	bitangent := tangent.Cross(n).Normalize()

	sinG, cosG := math.Sincos(g)
	sinPhi, cosPhi := math.Sincos(phi)

	return n.Multiply(cosG).
		Add(tangent.Multiply(sinG * cosPhi)).
		Add(bitangent.Multiply(sinG * sinPhi))
}

// SampleOnUnitSphere generates a uniform random point on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	z := 2.0*sample.Y - 1.0 // z ∈ [-1, 1)
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	sinPhi, cosPhi := math.Sincos(phi)
	return NewVec3(r*cosPhi, r*sinPhi, z)
}

// SamplePointInUnitDisk generates an area-uniform point in the unit disk in the z=0 plane
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	r := math.Sqrt(sample.X)
	theta := 2.0 * math.Pi * sample.Y
	sinTheta, cosTheta := math.Sincos(theta)
	return NewVec3(r*cosTheta, r*sinTheta, 0)
}

// SamplePointInUnitSquare generates a uniform point in [-0.5, 0.5)² in the z=0 plane
func SamplePointInUnitSquare(sample Vec2) Vec3 {
	return NewVec3(sample.X-0.5, sample.Y-0.5, 0)
}
