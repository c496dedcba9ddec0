package core

import "fmt"

// unitTolerance bounds |len²-1| for a vector to count as unit length
const unitTolerance = 1e-6

// Normal is a direction that is always unit length.
// The zero value is not a valid Normal; use NewNormal or NormalFromVector.
type Normal struct {
	v Vec3
}

// NewNormal wraps a vector that must already be unit length.
// Panics if the vector is not normalized.
func NewNormal(unit Vec3) Normal {
	if !unit.IsNormalized() {
		panic(fmt.Sprintf("core: normal %v is not unit length (|n|=%g)", unit, unit.Length()))
	}
	return Normal{v: unit}
}

// NormalFromVector normalizes an arbitrary non-zero vector into a Normal.
// Panics on a zero-length or non-finite vector.
func NormalFromVector(v Vec3) Normal {
	length := v.Length()
	if length == 0 || !v.IsFinite() {
		panic(fmt.Sprintf("core: cannot build a normal from %v", v))
	}
	return Normal{v: v.Multiply(1.0 / length)}
}

// Vec returns the unit vector of the normal
func (n Normal) Vec() Vec3 {
	return n.v
}

// Negate returns the opposite normal
func (n Normal) Negate() Normal {
	return Normal{v: n.v.Negate()}
}

// Reflect mirrors a direction about the normal: d - 2(d·n)n
func (n Normal) Reflect(d Vec3) Vec3 {
	return d.Subtract(n.v.Multiply(2 * d.Dot(n.v)))
}

// String implements fmt.Stringer
func (n Normal) String() string {
	return fmt.Sprintf("Normal(%g, %g, %g)", n.v.X, n.v.Y, n.v.Z)
}

// Hit contains information about a ray-surface intersection
type Hit struct {
	Normal   Normal  // Outward unit normal at the intersection
	Position Vec3    // Point of intersection
	T        float64 // Parameter t along the ray, always > HitEpsilon
}

// SurfaceSample is a point and outward normal drawn from a surface distribution
type SurfaceSample struct {
	Position Vec3
	Normal   Normal
}

// HitEpsilon is the minimum ray parameter accepted as a hit, rejecting self-intersection at the origin
const HitEpsilon = 1e-4
