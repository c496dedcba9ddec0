package geometry

import "github.com/df07/go-viewfactors/pkg/core"

// intersectRectangle tests a local ray against the unit square [-0.5,0.5]² in the z=0 plane
func intersectRectangle(ray core.Ray) (core.Hit, bool) {
	t, p, ok := intersectPlaneZ(ray)
	if !ok {
		return core.Hit{}, false
	}

	if p.X <= -0.5 || p.X >= 0.5 || p.Y <= -0.5 || p.Y >= 0.5 {
		return core.Hit{}, false
	}

	return core.Hit{
		Normal:   core.NewNormal(core.UnitZ),
		Position: p,
		T:        t,
	}, true
}

// sampleRectangle picks a uniform point in the unit square
func sampleRectangle(sampler core.Sampler) core.SurfaceSample {
	return core.SurfaceSample{
		Position: core.SamplePointInUnitSquare(sampler.Get2D()),
		Normal:   core.NewNormal(core.UnitZ),
	}
}
