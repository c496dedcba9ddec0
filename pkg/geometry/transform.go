package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-viewfactors/pkg/core"
)

// Transform is an affine placement mapping a primitive's canonical local frame into world space.
// The inverse and the normal matrix are computed once at construction.
type Transform struct {
	m           core.Mat4 // local to world
	mInv        core.Mat4 // world to local
	mInvTrans   core.Mat3 // inverse-transpose of the linear part: normals local to world
	mLinTrans   core.Mat3 // transpose of the linear part: normals world to local
	scale       core.Vec3
	rotation    core.Quat
	translation core.Vec3
}

// NewTransform builds a local-to-world transform.
// Local +Z maps to axisZ (the outward orientation) and local +X maps to the
// component of axisX perpendicular to axisZ. The matrix is translation·rotation·scale.
// Panics if an axis has zero length, axisX is parallel to axisZ, or a scale component is zero.
func NewTransform(translation, scale, axisZ, axisX core.Vec3) Transform {
	if axisZ.LengthSquared() == 0 || !axisZ.IsFinite() {
		panic(fmt.Sprintf("geometry: degenerate orientation axis %v", axisZ))
	}
	if axisX.LengthSquared() == 0 || !axisX.IsFinite() {
		panic(fmt.Sprintf("geometry: degenerate tangent axis %v", axisX))
	}
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		panic(fmt.Sprintf("geometry: zero scale component in %v", scale))
	}

	z := axisZ.Normalize()

	// Align local Z with the orientation
	rotation1 := core.QuatFromRotationArc(core.UnitZ, z)

	// Spin about the rotated Z so local X lands on the tangent's in-plane component
	tangent := axisX.Subtract(z.Multiply(axisX.Dot(z)))
	if tangent.Length() < 1e-9*axisX.Length() {
		panic(fmt.Sprintf("geometry: tangent axis %v is parallel to orientation %v", axisX, axisZ))
	}
	tangent = tangent.Normalize()
	rotatedX := rotation1.Rotate(core.UnitX)
	angle := math.Atan2(z.Dot(rotatedX.Cross(tangent)), rotatedX.Dot(tangent))
	rotation2 := core.QuatFromAxisAngle(z, angle)

	rotation := rotation2.Mul(rotation1).Normalize()

	m := core.Translation(translation).
		Mul(core.FromMat3(rotation.ToMat3())).
		Mul(core.Scale(scale))

	linear := m.Linear()

	return Transform{
		m:           m,
		mInv:        m.AffineInverse(),
		mInvTrans:   linear.Inverse().Transpose(),
		mLinTrans:   linear.Transpose(),
		scale:       scale,
		rotation:    rotation,
		translation: translation,
	}
}

// Matrix returns the local-to-world matrix
func (t Transform) Matrix() core.Mat4 {
	return t.m
}

// InverseMatrix returns the world-to-local matrix
func (t Transform) InverseMatrix() core.Mat4 {
	return t.mInv
}

// Decompose returns the scale, rotation and translation the transform was built from
func (t Transform) Decompose() (scale core.Vec3, rotation core.Quat, translation core.Vec3) {
	return t.scale, t.rotation, t.translation
}

// PointLocalToWorld maps a local point to world space
func (t Transform) PointLocalToWorld(p core.Vec3) core.Vec3 {
	return t.m.TransformPoint(p)
}

// PointWorldToLocal maps a world point to local space
func (t Transform) PointWorldToLocal(p core.Vec3) core.Vec3 {
	return t.mInv.TransformPoint(p)
}

// VecLocalToWorld maps a local free vector to world space
func (t Transform) VecLocalToWorld(v core.Vec3) core.Vec3 {
	return t.m.TransformVector(v)
}

// VecWorldToLocal maps a world free vector to local space
func (t Transform) VecWorldToLocal(v core.Vec3) core.Vec3 {
	return t.mInv.TransformVector(v)
}

// NormalLocalToWorld maps a local normal to world space using the inverse-transpose
func (t Transform) NormalLocalToWorld(n core.Normal) core.Normal {
	return core.NormalFromVector(t.mInvTrans.MulVec(n.Vec()))
}

// NormalWorldToLocal maps a world normal to local space
func (t Transform) NormalWorldToLocal(n core.Normal) core.Normal {
	return core.NormalFromVector(t.mLinTrans.MulVec(n.Vec()))
}

// RayWorldToLocal maps a world ray into local space. The parameter t is preserved.
func (t Transform) RayWorldToLocal(r core.Ray) core.Ray {
	return core.Ray{
		Origin:    t.PointWorldToLocal(r.Origin),
		Direction: t.VecWorldToLocal(r.Direction),
	}
}

// RayLocalToWorld maps a local ray into world space. The parameter t is preserved.
func (t Transform) RayLocalToWorld(r core.Ray) core.Ray {
	return core.Ray{
		Origin:    t.PointLocalToWorld(r.Origin),
		Direction: t.VecLocalToWorld(r.Direction),
	}
}

// HitLocalToWorld maps a local hit into world space
func (t Transform) HitLocalToWorld(h core.Hit) core.Hit {
	return core.Hit{
		Normal:   t.NormalLocalToWorld(h.Normal),
		Position: t.PointLocalToWorld(h.Position),
		T:        h.T,
	}
}

// HitWorldToLocal maps a world hit into local space
func (t Transform) HitWorldToLocal(h core.Hit) core.Hit {
	return core.Hit{
		Normal:   t.NormalWorldToLocal(h.Normal),
		Position: t.PointWorldToLocal(h.Position),
		T:        h.T,
	}
}

// SurfaceSampleLocalToWorld maps a local surface sample into world space
func (t Transform) SurfaceSampleLocalToWorld(s core.SurfaceSample) core.SurfaceSample {
	return core.SurfaceSample{
		Position: t.PointLocalToWorld(s.Position),
		Normal:   t.NormalLocalToWorld(s.Normal),
	}
}

// SurfaceSampleWorldToLocal maps a world surface sample into local space
func (t Transform) SurfaceSampleWorldToLocal(s core.SurfaceSample) core.SurfaceSample {
	return core.SurfaceSample{
		Position: t.PointWorldToLocal(s.Position),
		Normal:   t.NormalWorldToLocal(s.Normal),
	}
}
