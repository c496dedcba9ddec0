package geometry

import (
	"fmt"

	"github.com/df07/go-viewfactors/pkg/core"
)

// Collider identifies which canonical local-space primitive a surface uses.
// Every primitive is unit sized and centered on the local origin; the surface's
// Transform supplies world placement and scale.
type Collider uint8

const (
	ColliderSphere    Collider = iota // unit sphere centered at the origin
	ColliderDisk                      // unit-radius disk in z=0, normal +Z
	ColliderRectangle                 // unit square [-0.5,0.5]² in z=0, normal +Z
	ColliderCylinder                  // unit-radius lateral surface, z ∈ [-0.5,0.5]
	ColliderCone                      // unit lateral cone, base radius 1 at z=0, apex at z=1
)

// String implements fmt.Stringer
func (c Collider) String() string {
	switch c {
	case ColliderSphere:
		return "sphere"
	case ColliderDisk:
		return "disk"
	case ColliderRectangle:
		return "rectangle"
	case ColliderCylinder:
		return "cylinder"
	case ColliderCone:
		return "cone"
	default:
		return fmt.Sprintf("Collider(%d)", uint8(c))
	}
}

// Intersect returns the nearest valid forward hit of a local-space ray, if any
func (c Collider) Intersect(ray core.Ray) (core.Hit, bool) {
	switch c {
	case ColliderSphere:
		return intersectSphere(ray)
	case ColliderDisk:
		return intersectDisk(ray)
	case ColliderRectangle:
		return intersectRectangle(ray)
	case ColliderCylinder:
		return intersectCylinder(ray)
	case ColliderCone:
		return intersectCone(ray)
	default:
		panic(fmt.Sprintf("geometry: unknown collider %v", c))
	}
}

// Sample draws a local-space point and outward normal from the primitive's surface distribution
func (c Collider) Sample(sampler core.Sampler) core.SurfaceSample {
	switch c {
	case ColliderSphere:
		return sampleSphere(sampler)
	case ColliderDisk:
		return sampleDisk(sampler)
	case ColliderRectangle:
		return sampleRectangle(sampler)
	case ColliderCylinder:
		return sampleCylinder(sampler)
	case ColliderCone:
		return sampleCone(sampler)
	default:
		panic(fmt.Sprintf("geometry: unknown collider %v", c))
	}
}

// intersectPlaneZ solves origin.z + t*direction.z = 0.
// Returns false for rays parallel to the plane or hits at t <= HitEpsilon.
func intersectPlaneZ(ray core.Ray) (float64, core.Vec3, bool) {
	if ray.Direction.Z == 0 {
		return 0, core.Vec3{}, false
	}

	t := -ray.Origin.Z / ray.Direction.Z
	if t <= core.HitEpsilon {
		return 0, core.Vec3{}, false
	}

	return t, ray.At(t), true
}
