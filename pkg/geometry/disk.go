package geometry

import "github.com/df07/go-viewfactors/pkg/core"

// intersectDisk tests a local ray against the unit disk in the z=0 plane
func intersectDisk(ray core.Ray) (core.Hit, bool) {
	t, p, ok := intersectPlaneZ(ray)
	if !ok {
		return core.Hit{}, false
	}

	// Accept only hits strictly inside the unit radius
	if p.X*p.X+p.Y*p.Y >= 1.0 {
		return core.Hit{}, false
	}

	return core.Hit{
		Normal:   core.NewNormal(core.UnitZ),
		Position: p,
		T:        t,
	}, true
}

// sampleDisk picks an area-uniform point on the unit disk
func sampleDisk(sampler core.Sampler) core.SurfaceSample {
	return core.SurfaceSample{
		Position: core.SamplePointInUnitDisk(sampler.Get2D()),
		Normal:   core.NewNormal(core.UnitZ),
	}
}
