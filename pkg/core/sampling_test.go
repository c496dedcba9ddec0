package core

import (
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D returned %v outside [0, 1)", v)
		}
		s := sampler.Get2D()
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("Get2D returned %v outside [0, 1)²", s)
		}
	}
}

func TestNewSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("samplers with the same seed diverged")
		}
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	normals := []Normal{
		NewNormal(UnitZ),
		NewNormal(UnitZ.Negate()),
		NormalFromVector(NewVec3(1, -2, 0.3)),
	}

	for _, n := range normals {
		t.Run(n.String(), func(t *testing.T) {
			sampler := NewSeededSampler(42)
			const samples = 200000
			sumCos := 0.0

			for i := 0; i < samples; i++ {
				d := SampleCosineHemisphere(n, sampler.Get2D())
				if !approxEqual(d.Length(), 1, 1e-9) {
					t.Fatalf("direction %v is not unit length", d)
				}
				cos := d.Dot(n.Vec())
				if cos < -1e-12 {
					t.Fatalf("direction %v points below the surface", d)
				}
				sumCos += cos
			}

			// E[cos θ] = 2/3 for a cosine-weighted hemisphere
			if mean := sumCos / samples; !approxEqual(mean, 2.0/3.0, 0.005) {
				t.Errorf("mean cosine %v, expected 2/3", mean)
			}
		})
	}
}

func TestSampleCosineHemisphere_Endpoints(t *testing.T) {
	n := NewNormal(UnitZ)

	// u = 0 points straight along the normal
	if d := SampleCosineHemisphere(n, NewVec2(0, 0.3)); !d.Equals(UnitZ) {
		t.Errorf("expected normal direction, got %v", d)
	}
	// u -> 1 approaches the tangent plane
	if d := SampleCosineHemisphere(n, NewVec2(0.999999, 0.3)); d.Z > 0.01 {
		t.Errorf("expected a grazing direction, got %v", d)
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	const samples = 100000
	mean := Zero

	for i := 0; i < samples; i++ {
		p := SampleOnUnitSphere(sampler.Get2D())
		if !approxEqual(p.Length(), 1, 1e-9) {
			t.Fatalf("point %v is not on the unit sphere", p)
		}
		mean = mean.Add(p)
	}

	mean = mean.Multiply(1.0 / samples)
	if mean.Length() > 0.01 {
		t.Errorf("mean point %v should be near the origin", mean)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	const samples = 100000
	sumR2 := 0.0

	for i := 0; i < samples; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		r2 := p.X*p.X + p.Y*p.Y
		if r2 > 1 || p.Z != 0 {
			t.Fatalf("point %v outside the unit disk", p)
		}
		sumR2 += r2
	}

	// Area-uniform: E[r²] = 1/2
	if mean := sumR2 / samples; !approxEqual(mean, 0.5, 0.005) {
		t.Errorf("mean r² %v, expected 0.5", mean)
	}
}

func TestSamplePointInUnitSquare(t *testing.T) {
	tests := []struct {
		sample   Vec2
		expected Vec3
	}{
		{NewVec2(0, 0), NewVec3(-0.5, -0.5, 0)},
		{NewVec2(0.5, 0.5), Zero},
		{NewVec2(0.75, 0.25), NewVec3(0.25, -0.25, 0)},
	}

	for _, tt := range tests {
		if got := SamplePointInUnitSquare(tt.sample); !got.Equals(tt.expected) {
			t.Errorf("SamplePointInUnitSquare(%v) = %v, want %v", tt.sample, got, tt.expected)
		}
	}
}

func TestSampleOnUnitSphere_Poles(t *testing.T) {
	if p := SampleOnUnitSphere(NewVec2(0, 0)); !p.Equals(UnitZ.Negate()) {
		t.Errorf("expected south pole, got %v", p)
	}
	if p := SampleOnUnitSphere(NewVec2(0.25, 0.5)); !approxEqual(p.Y, 1, 1e-12) {
		t.Errorf("expected (0, 1, 0), got %v", p)
	}
}
