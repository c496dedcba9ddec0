package geometry

import (
	"math"

	"github.com/df07/go-viewfactors/pkg/core"
)

// intersectCone tests a local ray against the lateral unit cone (1-z)² = x²+y², z ∈ (0, 1)
func intersectCone(ray core.Ray) (core.Hit, bool) {
	o := ray.Origin
	d := ray.Direction

	// Quadratic equation coefficients: at² + bt + c = 0
	a := d.Z*d.Z - d.X*d.X - d.Y*d.Y
	b := 2.0 * (o.Z*d.Z - d.Z - o.X*d.X - o.Y*d.Y)
	c := o.Z*o.Z - 2.0*o.Z + 1.0 - o.X*o.X - o.Y*o.Y

	// Ray parallel to a generator line: no well-defined quadratic
	if a == 0 {
		return core.Hit{}, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	// a may be negative, so order the roots explicitly
	if t2 < t1 {
		t1, t2 = t2, t1
	}

	for _, t := range [2]float64{t1, t2} {
		if t <= core.HitEpsilon {
			continue
		}
		p := ray.At(t)
		// Reject the mirrored nappe above the apex and anything below the base
		if p.Z <= 0 || p.Z >= 1 {
			continue
		}
		return core.Hit{
			Normal:   core.NormalFromVector(core.NewVec3(p.X, p.Y, 1.0-p.Z)),
			Position: p,
			T:        t,
		}, true
	}

	return core.Hit{}, false
}

// sampleCone maps an area-uniform disk sample onto the lateral surface (z = 1 - r)
func sampleCone(sampler core.Sampler) core.SurfaceSample {
	u := sampler.Get2D()
	r := math.Sqrt(u.X)
	theta := 2.0 * math.Pi * u.Y
	sinTheta, cosTheta := math.Sincos(theta)

	position := core.NewVec3(r*cosTheta, r*sinTheta, 1.0-r)

	// Gradient (x, y, 1-z) = r·(cosθ, sinθ, 1); use the unscaled form so the apex stays defined
	normal := core.NormalFromVector(core.NewVec3(cosTheta, sinTheta, 1.0))

	return core.SurfaceSample{
		Position: position,
		Normal:   normal,
	}
}
