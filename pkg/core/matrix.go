package core

import "fmt"

// Mat3 is a 3x3 matrix in row-major order
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVec multiplies the matrix by a column vector
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul multiplies this matrix by another (m * other)
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row][col] = m[row][0]*other[0][col] + m[row][1]*other[1][col] + m[row][2]*other[2][col]
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row][col] = m[col][row]
		}
	}
	return r
}

// Determinant returns the determinant of the matrix
func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of the matrix via the adjugate.
// Panics if the matrix is singular.
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		panic(fmt.Sprintf("core: singular matrix %v", m))
	}
	invDet := 1.0 / det

	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
		},
	}
}

// Mat4 is a 4x4 affine matrix in row-major order.
// Points are transformed as column vectors with w=1, free vectors with w=0.
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a translation matrix
func Translation(t Vec3) Mat4 {
	m := Identity4()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

// Scale returns a per-axis scale matrix
func Scale(s Vec3) Mat4 {
	m := Identity4()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

// FromMat3 embeds a 3x3 linear map into an affine matrix
func FromMat3(l Mat3) Mat4 {
	m := Identity4()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = l[row][col]
		}
	}
	return m
}

// Mul multiplies this matrix by another (m * other)
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row][k] * other[k][col]
			}
			r[row][col] = sum
		}
	}
	return r
}

// Linear returns the upper-left 3x3 portion of the matrix
func (m Mat4) Linear() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// TranslationPart returns the translation column of the matrix
func (m Mat4) TranslationPart() Vec3 {
	return Vec3{m[0][3], m[1][3], m[2][3]}
}

// TransformPoint transforms a point (w=1)
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformVector transforms a free vector (w=0), ignoring translation
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// AffineInverse returns the inverse of an affine matrix (bottom row 0 0 0 1).
// Panics if the linear part is singular.
func (m Mat4) AffineInverse() Mat4 {
	invLinear := m.Linear().Inverse()
	invTranslation := invLinear.MulVec(m.TranslationPart()).Negate()

	r := FromMat3(invLinear)
	r[0][3] = invTranslation.X
	r[1][3] = invTranslation.Y
	r[2][3] = invTranslation.Z
	return r
}
