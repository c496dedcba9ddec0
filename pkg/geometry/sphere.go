package geometry

import (
	"math"

	"github.com/df07/go-viewfactors/pkg/core"
)

// sphereMaxT bounds accepted sphere roots in local units
const sphereMaxT = 100.0

// intersectSphere tests a local ray against the unit sphere ‖o+td‖² = 1
func intersectSphere(ray core.Ray) (core.Hit, bool) {
	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - 1.0

	if a == 0 {
		return core.Hit{}, false
	}

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Hit{}, false
	}

	// Find the nearest root that lies in the acceptable range
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= core.HitEpsilon || root >= sphereMaxT {
		root = (-halfB + sqrtD) / a
		if root <= core.HitEpsilon || root >= sphereMaxT {
			return core.Hit{}, false
		}
	}

	p := ray.At(root)
	return core.Hit{
		Normal:   core.NormalFromVector(p),
		Position: p,
		T:        root,
	}, true
}

// sampleSphere picks a point uniformly over the unit sphere; the normal equals the position
func sampleSphere(sampler core.Sampler) core.SurfaceSample {
	p := core.SampleOnUnitSphere(sampler.Get2D())
	return core.SurfaceSample{
		Position: p,
		Normal:   core.NewNormal(p),
	}
}
