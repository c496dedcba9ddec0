package scene

import (
	"github.com/df07/go-viewfactors/pkg/core"
	"github.com/df07/go-viewfactors/pkg/geometry"
)

const (
	// MaxReflections caps the number of bounces in one path
	MaxReflections = 100
	// MinEnergy ends a path once the carried energy drops below it
	MinEnergy = 1e-3
)

// TraceRay follows a path through the scene until it escapes, runs out of energy,
// or exceeds MaxReflections. Each bounce absorbs emissivity × remaining energy.
func (s *Scene) TraceRay(ray core.Ray, sampler core.Sampler) TraceRecord {
	energy := 1.0
	reflections := 0

	record := NewTraceRecord(ray)

	for {
		hitRecord, ok := s.CastRay(ray)
		if !ok {
			// Escaped: the record stays not terminated early
			return record
		}

		surface := s.surfaces[hitRecord.SurfaceID]

		absorbed := energy * surface.Emissivity()
		energy -= absorbed
		reflections++

		ray = core.NewRay(hitRecord.Hit.Position, reflectDirection(surface.Material(), ray, hitRecord.Hit, sampler))
		record.AddEntry(ray, hitRecord, absorbed)

		if reflections > MaxReflections || energy < MinEnergy {
			record.TerminateEarly()
			return record
		}
	}
}

// reflectDirection computes the outgoing direction for the surface's reflection kind
func reflectDirection(material geometry.Material, incoming core.Ray, hit core.Hit, sampler core.Sampler) core.Vec3 {
	switch material {
	case geometry.Specular:
		return hit.Normal.Reflect(incoming.Direction)
	default:
		return core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	}
}

// emissionRay samples a point on the source and a diffuse emission direction about its normal.
// Emission is always diffuse, whatever the source's own reflection kind.
func emissionRay(source geometry.Surface, sampler core.Sampler) core.Ray {
	sample := source.Sample(sampler)
	direction := core.SampleCosineHemisphere(sample.Normal, sampler.Get2D())
	return core.NewRay(sample.Position, direction)
}

// DebugRaysFromSurface traces numRays emission paths from a surface and returns their records,
// for visualization or inspection
func (s *Scene) DebugRaysFromSurface(sampler core.Sampler, surfaceID, numRays int) []TraceRecord {
	s.checkSurfaceID(surfaceID)

	source := s.surfaces[surfaceID]
	records := make([]TraceRecord, 0, max(numRays, 0))
	for i := 0; i < numRays; i++ {
		records = append(records, s.TraceRay(emissionRay(source, sampler), sampler))
	}
	return records
}
