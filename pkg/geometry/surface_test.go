package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-viewfactors/pkg/core"
)

func TestSurface_Defaults(t *testing.T) {
	s := NewSphere(core.Zero, 1)

	if s.Emissivity() != 1 {
		t.Errorf("expected black body emissivity 1, got %v", s.Emissivity())
	}
	if s.Material() != Diffuse {
		t.Errorf("expected diffuse, got %v", s.Material())
	}
	if s.Collider() != ColliderSphere {
		t.Errorf("expected sphere collider, got %v", s.Collider())
	}
}

func TestSurface_BuildersReturnCopies(t *testing.T) {
	original := NewDisk(core.Zero, 1, core.UnitZ)
	gray := original.WithEmissivity(0.3).Specular()

	if original.Emissivity() != 1 || original.Material() != Diffuse {
		t.Errorf("original surface was modified: e=%v %v", original.Emissivity(), original.Material())
	}
	if gray.Emissivity() != 0.3 || gray.Material() != Specular {
		t.Errorf("expected gray specular copy, got e=%v %v", gray.Emissivity(), gray.Material())
	}
	if gray.Diffuse().Material() != Diffuse {
		t.Error("Diffuse() should switch the reflection kind back")
	}
}

func TestSurface_WithEmissivityPanics(t *testing.T) {
	s := NewSphere(core.Zero, 1)
	assertPanics(t, "negative", func() { s.WithEmissivity(-0.1) })
	assertPanics(t, "above one", func() { s.WithEmissivity(1.1) })
	assertPanics(t, "NaN", func() { s.WithEmissivity(math.NaN()) })

	// Bounds are allowed
	s.WithEmissivity(0)
	s.WithEmissivity(1)
}

func TestSurface_Intersect(t *testing.T) {
	invLen := 1 / math.Sqrt(1.25)

	tests := []struct {
		name        string
		surface     Surface
		ray         core.Ray
		shouldHit   bool
		expectedT   float64
		expectedPos core.Vec3
		expectedN   core.Vec3
	}{
		{
			name:        "translated scaled sphere",
			surface:     NewSphere(core.NewVec3(1, 2, 3), 2),
			ray:         core.NewRay(core.NewVec3(1, 2, -10), core.UnitZ),
			shouldHit:   true,
			expectedT:   11,
			expectedPos: core.NewVec3(1, 2, 1),
			expectedN:   core.UnitZ.Negate(),
		},
		{
			name:        "disk facing -X hit from behind",
			surface:     NewDisk(core.NewVec3(2, 0, 0), 1, core.UnitX.Negate()),
			ray:         core.NewRay(core.NewVec3(5, 0, 0.5), core.UnitX.Negate()),
			shouldHit:   true,
			expectedT:   3,
			expectedPos: core.NewVec3(2, 0, 0.5),
			expectedN:   core.UnitX.Negate(),
		},
		{
			name:        "wide rectangle inside its width",
			surface:     NewRectangle(core.Zero, 4, 1, core.UnitZ, core.UnitX),
			ray:         core.NewRay(core.NewVec3(1.9, 0.4, 1), core.UnitZ.Negate()),
			shouldHit:   true,
			expectedT:   1,
			expectedPos: core.NewVec3(1.9, 0.4, 0),
			expectedN:   core.UnitZ,
		},
		{
			name:      "wide rectangle outside its height",
			surface:   NewRectangle(core.Zero, 4, 1, core.UnitZ, core.UnitX),
			ray:       core.NewRay(core.NewVec3(1.9, 0.6, 1), core.UnitZ.Negate()),
			shouldHit: false,
		},
		{
			name:        "cylinder along Y",
			surface:     NewCylinder(core.Zero, 2, 4, core.UnitY),
			ray:         core.NewRay(core.NewVec3(-5, 1.9, 0), core.UnitX),
			shouldHit:   true,
			expectedT:   3,
			expectedPos: core.NewVec3(-2, 1.9, 0),
			expectedN:   core.UnitX.Negate(),
		},
		{
			name:      "cylinder along Y above its height",
			surface:   NewCylinder(core.Zero, 2, 4, core.UnitY),
			ray:       core.NewRay(core.NewVec3(-5, 2.1, 0), core.UnitX),
			shouldHit: false,
		},
		{
			name:        "tall cone at half height",
			surface:     NewCone(core.Zero, 1, 2, core.UnitZ),
			ray:         core.NewRay(core.NewVec3(-3, 0, 1), core.UnitX),
			shouldHit:   true,
			expectedT:   2.5,
			expectedPos: core.NewVec3(-0.5, 0, 1),
			expectedN:   core.NewVec3(-invLen, 0, 0.5*invLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.surface.Intersect(tt.ray)
			if ok != tt.shouldHit {
				t.Fatalf("expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if !approxEqual(hit.T, tt.expectedT, 1e-9) {
				t.Errorf("expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.Position.Subtract(tt.expectedPos).Length() > 1e-9 {
				t.Errorf("expected position %v, got %v", tt.expectedPos, hit.Position)
			}
			if hit.Normal.Vec().Subtract(tt.expectedN).Length() > 1e-9 {
				t.Errorf("expected normal %v, got %v", tt.expectedN, hit.Normal)
			}
		})
	}
}

func TestSurface_SampleInWorldSpace(t *testing.T) {
	center := core.NewVec3(-1, 4, 2)
	radius := 3.0
	sphere := NewSphere(center, radius)
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		s := sphere.Sample(sampler)
		offset := s.Position.Subtract(center)
		if !approxEqual(offset.Length(), radius, 1e-9) {
			t.Fatalf("sample %v is %v from the center, expected %v", s.Position, offset.Length(), radius)
		}
		if s.Normal.Vec().Subtract(offset.Multiply(1/radius)).Length() > 1e-9 {
			t.Fatalf("sample normal %v is not radial", s.Normal)
		}
	}

	disk := NewDisk(core.NewVec3(0, 0, 5), 2, core.UnitY)
	for i := 0; i < 1000; i++ {
		s := disk.Sample(sampler)
		offset := s.Position.Subtract(core.NewVec3(0, 0, 5))
		if !approxEqual(offset.Y, 0, 1e-9) || offset.Length() >= 2 {
			t.Fatalf("sample %v is not on the disk", s.Position)
		}
		if s.Normal.Vec().Subtract(core.UnitY).Length() > 1e-9 {
			t.Fatalf("disk sample normal %v, expected +Y", s.Normal)
		}
	}
}

func TestMaterial_String(t *testing.T) {
	if Diffuse.String() != "diffuse" || Specular.String() != "specular" {
		t.Errorf("unexpected names %q %q", Diffuse, Specular)
	}
	if Material(7).String() != "Material(7)" {
		t.Errorf("unexpected name for unknown material %q", Material(7))
	}
}
