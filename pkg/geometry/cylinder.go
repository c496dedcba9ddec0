package geometry

import (
	"math"

	"github.com/df07/go-viewfactors/pkg/core"
)

// intersectCylinder tests a local ray against the open unit cylinder x²+y² = 1, z ∈ [-0.5, 0.5]
func intersectCylinder(ray core.Ray) (core.Hit, bool) {
	// Quadratic in the x,y components only: at² + bt + c = 0
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Y*ray.Direction.Y
	b := 2.0 * (ray.Origin.X*ray.Direction.X + ray.Origin.Y*ray.Direction.Y)
	c := ray.Origin.X*ray.Origin.X + ray.Origin.Y*ray.Origin.Y - 1.0

	// Ray parallel to the axis never crosses the lateral surface
	if a == 0 {
		return core.Hit{}, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	roots := [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}

	// Nearer root first; fall through to the farther one when the nearer
	// root is behind the origin or outside the height bounds
	for _, t := range roots {
		if t <= core.HitEpsilon {
			continue
		}
		p := ray.At(t)
		if p.Z < -0.5 || p.Z > 0.5 {
			continue
		}
		return core.Hit{
			Normal:   core.NormalFromVector(core.NewVec3(p.X, p.Y, 0)),
			Position: p,
			T:        t,
		}, true
	}

	return core.Hit{}, false
}

// sampleCylinder picks a uniform point on the lateral surface; the normal is radial
func sampleCylinder(sampler core.Sampler) core.SurfaceSample {
	u := sampler.Get2D()
	theta := 2.0 * math.Pi * u.X
	sinTheta, cosTheta := math.Sincos(theta)
	z := u.Y - 0.5

	return core.SurfaceSample{
		Position: core.NewVec3(cosTheta, sinTheta, z),
		Normal:   core.NormalFromVector(core.NewVec3(cosTheta, sinTheta, 0)),
	}
}
