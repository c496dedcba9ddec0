package scene

import (
	"testing"

	"github.com/df07/go-viewfactors/pkg/core"
	"github.com/df07/go-viewfactors/pkg/geometry"
)

// newMirrorPlates builds two 10×10 specular gray plates at z=0 and z=1
func newMirrorPlates(emissivity float64) *Scene {
	s := NewScene()
	s.AddSurface(geometry.NewRectangle(core.Zero, 10, 10, core.UnitZ, core.UnitX).
		WithEmissivity(emissivity).Specular())
	s.AddSurface(geometry.NewRectangle(core.UnitZ, 10, 10, core.UnitZ.Negate(), core.UnitX).
		WithEmissivity(emissivity).Specular())
	return s
}

func TestTraceRay_EmptySceneEscapes(t *testing.T) {
	record := NewScene().TraceRay(core.NewRay(core.Zero, core.UnitX), core.NewSeededSampler(42))

	if len(record.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(record.Entries))
	}
	if record.TerminatedEarly || !record.Escaped() {
		t.Error("a miss should escape, not terminate early")
	}
	if record.RemainingEnergy() != 1 {
		t.Errorf("expected all energy remaining, got %v", record.RemainingEnergy())
	}
}

func TestTraceRay_BlackBodyAbsorbsEverything(t *testing.T) {
	s := NewScene()
	s.AddSurface(geometry.NewDisk(core.Zero, 1, core.UnitZ))

	record := s.TraceRay(core.NewRay(core.NewVec3(0, 0, 2), core.UnitZ.Negate()), core.NewSeededSampler(42))

	if len(record.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(record.Entries))
	}
	entry := record.Entries[0]
	if entry.SurfaceID != 0 || entry.EnergyAbsorbed != 1 {
		t.Errorf("expected surface 0 to absorb 1, got %+v", entry)
	}
	if !entry.Point.Equals(core.Zero) {
		t.Errorf("expected hit at origin, got %v", entry.Point)
	}
	// Remaining energy 0 is below the floor
	if !record.TerminatedEarly {
		t.Error("expected the energy floor to stop the path")
	}
}

func TestTraceRay_SpecularPlates(t *testing.T) {
	s := newMirrorPlates(0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(1, 0, 1))

	record := s.TraceRay(ray, core.NewSeededSampler(42))

	expectedPoints := []core.Vec3{
		core.NewVec3(0.5, 0, 1),
		core.NewVec3(1.5, 0, 0),
		core.NewVec3(2.5, 0, 1),
		core.NewVec3(3.5, 0, 0),
		core.NewVec3(4.5, 0, 1),
	}
	expectedIDs := []int{1, 0, 1, 0, 1}

	if len(record.Entries) != len(expectedPoints) {
		t.Fatalf("expected %d bounces, got %d", len(expectedPoints), len(record.Entries))
	}

	absorbed := 0.5
	for i, entry := range record.Entries {
		if entry.SurfaceID != expectedIDs[i] {
			t.Errorf("bounce %d: expected surface %d, got %d", i, expectedIDs[i], entry.SurfaceID)
		}
		if entry.Point.Subtract(expectedPoints[i]).Length() > 1e-9 {
			t.Errorf("bounce %d: expected point %v, got %v", i, expectedPoints[i], entry.Point)
		}
		if !approxEqual(entry.EnergyAbsorbed, absorbed, 1e-12) {
			t.Errorf("bounce %d: expected absorbed %v, got %v", i, absorbed, entry.EnergyAbsorbed)
		}
		absorbed /= 2
	}

	if record.TerminatedEarly {
		t.Error("path should escape past the plate edge")
	}
	if !approxEqual(record.RemainingEnergy(), 1.0/32, 1e-12) {
		t.Errorf("expected remaining energy 1/32, got %v", record.RemainingEnergy())
	}
	if record.LastRay.Origin.Subtract(expectedPoints[4]).Length() > 1e-9 {
		t.Errorf("last ray should leave the last hit, got origin %v", record.LastRay.Origin)
	}
	if record.LastRay.Direction.Subtract(core.NewVec3(1, 0, -1)).Length() > 1e-9 {
		t.Errorf("expected mirrored last direction, got %v", record.LastRay.Direction)
	}
}

func TestTraceRay_EnergyFloorStopsGrayPath(t *testing.T) {
	s := newMirrorPlates(0.5)
	// Steep ray: many bounces before reaching the plate edge
	ray := core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(0.01, 0, 1))

	record := s.TraceRay(ray, core.NewSeededSampler(42))

	// 0.5^10 < 1e-3 <= 0.5^9
	if len(record.Entries) != 10 {
		t.Errorf("expected 10 bounces, got %d", len(record.Entries))
	}
	if !record.TerminatedEarly {
		t.Error("expected early termination by the energy floor")
	}
	if record.RemainingEnergy() >= MinEnergy {
		t.Errorf("remaining energy %v should be below the floor", record.RemainingEnergy())
	}
}

func TestTraceRay_ReflectionCap(t *testing.T) {
	// A perfect mirror sphere never absorbs, so only the bounce cap stops the path
	s := NewScene()
	s.AddSurface(geometry.NewSphere(core.Zero, 1).WithEmissivity(0).Specular())

	record := s.TraceRay(core.NewRay(core.Zero, core.NewVec3(0.3, 0.5, 0.7).Normalize()), core.NewSeededSampler(42))

	if len(record.Entries) != MaxReflections+1 {
		t.Errorf("expected %d entries, got %d", MaxReflections+1, len(record.Entries))
	}
	if !record.TerminatedEarly {
		t.Error("expected early termination by the bounce cap")
	}
	if record.TotalAbsorbed() != 0 {
		t.Errorf("zero emissivity sphere absorbed %v", record.TotalAbsorbed())
	}
}

func TestTraceRay_EnergyIsConserved(t *testing.T) {
	s := newInwardCube(0.3)
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 2000; i++ {
		record := s.TraceRay(emissionRay(s.Surface(i%6), sampler), sampler)

		for _, entry := range record.Entries {
			if entry.EnergyAbsorbed < 0 {
				t.Fatalf("negative absorption %+v", entry)
			}
		}
		if !approxEqual(record.TotalAbsorbed()+record.RemainingEnergy(), 1, 1e-12) {
			t.Fatalf("absorbed %v + remaining %v != 1", record.TotalAbsorbed(), record.RemainingEnergy())
		}
		if len(record.Entries) > MaxReflections+1 {
			t.Fatalf("path has %d entries", len(record.Entries))
		}
	}
}

func TestEmissionRay_LeavesSourceOutward(t *testing.T) {
	s := NewScene()
	s.AddSurface(geometry.NewCylinder(core.NewVec3(1, 2, 3), 0.5, 2, core.UnitY))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		ray := emissionRay(s.Surface(0), sampler)
		radial := ray.Origin.Subtract(core.NewVec3(1, ray.Origin.Y, 3))
		if !approxEqual(radial.Length(), 0.5, 1e-9) {
			t.Fatalf("emission origin %v not on the cylinder", ray.Origin)
		}
		if ray.Direction.Dot(radial) < 0 {
			t.Fatalf("emission direction %v points into the cylinder", ray.Direction)
		}
	}
}

func TestDebugRaysFromSurface(t *testing.T) {
	s := newGrayPlates(0.5, 0.5)

	records := s.DebugRaysFromSurface(core.NewSeededSampler(42), 0, 25)
	if len(records) != 25 {
		t.Fatalf("expected 25 records, got %d", len(records))
	}
	for i, record := range records {
		if len(record.Entries) == 0 || record.Entries[0].SurfaceID != 1 {
			t.Errorf("record %d: first hit should be the opposite plate", i)
		}
	}

	if got := s.DebugRaysFromSurface(core.NewSeededSampler(42), 0, 0); len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
	assertPanics(t, "bad source", func() { s.DebugRaysFromSurface(core.NewSeededSampler(42), 5, 1) })
}
