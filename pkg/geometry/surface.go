package geometry

import (
	"fmt"

	"github.com/df07/go-viewfactors/pkg/core"
)

// Material selects how a surface redirects the energy it does not absorb
type Material uint8

const (
	Diffuse  Material = iota // cosine-weighted hemisphere about the hit normal
	Specular                 // mirror reflection about the hit normal
)

// String implements fmt.Stringer
func (m Material) String() string {
	switch m {
	case Diffuse:
		return "diffuse"
	case Specular:
		return "specular"
	default:
		return fmt.Sprintf("Material(%d)", uint8(m))
	}
}

// Surface is a placed primitive with radiative properties.
// Surfaces are values: the With*/Diffuse/Specular methods return modified copies,
// so a surface cannot change once it has been added to a scene.
type Surface struct {
	transform  Transform
	collider   Collider
	emissivity float64  // Fraction of incident energy absorbed on contact, in [0,1]
	material   Material // Reflection kind for the non-absorbed fraction
}

// NewSurface places a collider with the given transform as a black diffuse body
func NewSurface(collider Collider, transform Transform) Surface {
	return Surface{
		transform:  transform,
		collider:   collider,
		emissivity: 1.0,
		material:   Diffuse,
	}
}

// NewSphere creates a sphere surface
func NewSphere(center core.Vec3, radius float64) Surface {
	transform := NewTransform(center, core.One.Multiply(radius), core.UnitZ, core.UnitX)
	return NewSurface(ColliderSphere, transform)
}

// NewDisk creates a disk facing along normal
func NewDisk(center core.Vec3, radius float64, normal core.Vec3) Surface {
	n := normal.Normalize()
	transform := NewTransform(center, core.One.Multiply(radius), n, n.AnyOrthonormal())
	return NewSurface(ColliderDisk, transform)
}

// NewCylinder creates an open cylinder centered on center with its axis along axis
func NewCylinder(center core.Vec3, radius, height float64, axis core.Vec3) Surface {
	a := axis.Normalize()
	transform := NewTransform(center, core.NewVec3(radius, radius, height), a, a.AnyOrthonormal())
	return NewSurface(ColliderCylinder, transform)
}

// NewRectangle creates a width×height rectangle facing along normal with its width along axisX
func NewRectangle(center core.Vec3, width, height float64, normal, axisX core.Vec3) Surface {
	transform := NewTransform(center, core.NewVec3(width, height, 1.0), normal, axisX)
	return NewSurface(ColliderRectangle, transform)
}

// NewCone creates the lateral surface of a cone whose base circle is centered on baseCenter
// and whose apex sits at baseCenter + height·axis
func NewCone(baseCenter core.Vec3, radius, height float64, axis core.Vec3) Surface {
	a := axis.Normalize()
	transform := NewTransform(baseCenter, core.NewVec3(radius, radius, height), a, a.AnyOrthonormal())
	return NewSurface(ColliderCone, transform)
}

// WithEmissivity returns a gray-body copy of the surface.
// Panics if emissivity is outside [0, 1].
func (s Surface) WithEmissivity(emissivity float64) Surface {
	if !(emissivity >= 0 && emissivity <= 1) {
		panic(fmt.Sprintf("geometry: emissivity %g outside [0, 1]", emissivity))
	}
	s.emissivity = emissivity
	return s
}

// Diffuse returns a copy of the surface that reflects diffusely
func (s Surface) Diffuse() Surface {
	s.material = Diffuse
	return s
}

// Specular returns a copy of the surface that reflects specularly
func (s Surface) Specular() Surface {
	s.material = Specular
	return s
}

// Transform returns the surface placement
func (s Surface) Transform() Transform {
	return s.transform
}

// Collider returns the primitive kind
func (s Surface) Collider() Collider {
	return s.collider
}

// Emissivity returns the absorbed fraction of incident energy
func (s Surface) Emissivity() float64 {
	return s.emissivity
}

// Material returns the reflection kind
func (s Surface) Material() Material {
	return s.material
}

// Intersect tests a world-space ray against the surface.
// The ray is mapped into local space, tested against the collider, and any hit mapped back.
func (s Surface) Intersect(ray core.Ray) (core.Hit, bool) {
	local := s.transform.RayWorldToLocal(ray)

	hit, ok := s.collider.Intersect(local)
	if !ok {
		return core.Hit{}, false
	}

	return s.transform.HitLocalToWorld(hit), true
}

// Sample draws a world-space point and outward normal from the surface
func (s Surface) Sample(sampler core.Sampler) core.SurfaceSample {
	return s.transform.SurfaceSampleLocalToWorld(s.collider.Sample(sampler))
}
