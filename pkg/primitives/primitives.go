// Package primitives provides composite shapes that decompose into scene surfaces
package primitives

import (
	"github.com/df07/go-viewfactors/pkg/core"
	"github.com/df07/go-viewfactors/pkg/geometry"
	"github.com/df07/go-viewfactors/pkg/scene"
)

// Box is a closed rectangular box made of six outward-facing rectangles
type Box struct {
	Center core.Vec3
	AxisX  core.Vec3 // Box local X direction
	AxisY  core.Vec3 // Box local Y direction; local Z is AxisX × AxisY
	Size   core.Vec3 // Edge lengths along the local axes
	Inward bool      // Faces point into the box, for enclosures
}

// NewBox creates an axis-aligned box
func NewBox(center, size core.Vec3) Box {
	return Box{Center: center, AxisX: core.UnitX, AxisY: core.UnitY, Size: size}
}

// Faces returns the six faces in the order +X, -X, +Y, -Y, +Z, -Z
func (b Box) Faces() []geometry.Surface {
	i := b.AxisX.Normalize()
	j := b.AxisY.Normalize()
	k := i.Cross(j).Normalize()

	sign := 1.0
	if b.Inward {
		sign = -1.0
	}

	return []geometry.Surface{
		geometry.NewRectangle(b.Center.Add(i.Multiply(b.Size.X/2)), b.Size.Y, b.Size.Z, i.Multiply(sign), j),
		geometry.NewRectangle(b.Center.Subtract(i.Multiply(b.Size.X/2)), b.Size.Y, b.Size.Z, i.Multiply(-sign), j),
		geometry.NewRectangle(b.Center.Add(j.Multiply(b.Size.Y/2)), b.Size.X, b.Size.Z, j.Multiply(sign), i),
		geometry.NewRectangle(b.Center.Subtract(j.Multiply(b.Size.Y/2)), b.Size.X, b.Size.Z, j.Multiply(-sign), i),
		geometry.NewRectangle(b.Center.Add(k.Multiply(b.Size.Z/2)), b.Size.X, b.Size.Y, k.Multiply(sign), i),
		geometry.NewRectangle(b.Center.Subtract(k.Multiply(b.Size.Z/2)), b.Size.X, b.Size.Y, k.Multiply(-sign), i.Negate()),
	}
}

// AddSurfaces implements scene.Primitive
func (b Box) AddSurfaces(s *scene.Scene) {
	for _, face := range b.Faces() {
		s.AddSurface(face)
	}
}

// Cylinder is a closed cylinder: two end caps and the lateral surface
type Cylinder struct {
	Center core.Vec3
	Axis   core.Vec3
	Height float64
	Radius float64
}

// Faces returns the top cap, the bottom cap and the lateral surface, in that order
func (c Cylinder) Faces() []geometry.Surface {
	axis := c.Axis.Normalize()
	half := axis.Multiply(c.Height / 2)

	return []geometry.Surface{
		geometry.NewDisk(c.Center.Add(half), c.Radius, axis),
		geometry.NewDisk(c.Center.Subtract(half), c.Radius, axis.Negate()),
		geometry.NewCylinder(c.Center, c.Radius, c.Height, axis),
	}
}

// AddSurfaces implements scene.Primitive
func (c Cylinder) AddSurfaces(s *scene.Scene) {
	for _, face := range c.Faces() {
		s.AddSurface(face)
	}
}

// Cone is a closed cone: a base disk and the lateral surface up to the apex
type Cone struct {
	BaseCenter core.Vec3
	Axis       core.Vec3 // Points from the base toward the apex
	Height     float64
	Radius     float64
}

// Faces returns the base disk and the lateral surface, in that order
func (c Cone) Faces() []geometry.Surface {
	axis := c.Axis.Normalize()

	return []geometry.Surface{
		geometry.NewDisk(c.BaseCenter, c.Radius, axis.Negate()),
		geometry.NewCone(c.BaseCenter, c.Radius, c.Height, axis),
	}
}

// AddSurfaces implements scene.Primitive
func (c Cone) AddSurfaces(s *scene.Scene) {
	for _, face := range c.Faces() {
		s.AddSurface(face)
	}
}
