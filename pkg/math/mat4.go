package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Columns are the x, y and z axes followed by the translation.
type Mat4 [16]float32

// projectionMinDepth is the smallest near/far separation Projection accepts.
const projectionMinDepth = 0.01

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromColumns builds a matrix from its axis and translation columns.
func Mat4FromColumns(x, y, z, t Vec4) Mat4 {
	return Mat4{
		x.X, x.Y, x.Z, x.W,
		y.X, y.Y, y.Z, y.W,
		z.X, z.Y, z.Z, z.W,
		t.X, t.Y, t.Z, t.W,
	}
}

// Mat4FromMat3 embeds a 3x3 basis with zero translation.
func Mat4FromMat3(m3 Mat3) Mat4 {
	return Mat4FromColumns(
		m3.XAxis().Vec4(0),
		m3.YAxis().Vec4(0),
		m3.ZAxis().Vec4(0),
		Vec4{0, 0, 0, 1},
	)
}

// At returns element m{row}{col}, both 1-based.
func (m Mat4) At(row, col int) float32 {
	return m[(col-1)*4+row-1]
}

func (m Mat4) column(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

func (m *Mat4) setColumn(i int, v Vec4) {
	m[i*4], m[i*4+1], m[i*4+2], m[i*4+3] = v.X, v.Y, v.Z, v.W
}

// XAxis returns the right axis column.
func (m Mat4) XAxis() Vec4 { return m.column(0) }

// YAxis returns the up axis column.
func (m Mat4) YAxis() Vec4 { return m.column(1) }

// ZAxis returns the forward axis column.
func (m Mat4) ZAxis() Vec4 { return m.column(2) }

// Translation returns the fourth column.
func (m Mat4) Translation() Vec4 { return m.column(3) }

// SetXAxis replaces the right axis column.
func (m *Mat4) SetXAxis(v Vec4) { m.setColumn(0, v) }

// SetYAxis replaces the up axis column.
func (m *Mat4) SetYAxis(v Vec4) { m.setColumn(1, v) }

// SetZAxis replaces the forward axis column.
func (m *Mat4) SetZAxis(v Vec4) { m.setColumn(2, v) }

// SetTranslation replaces the fourth column.
func (m *Mat4) SetTranslation(v Vec4) { m.setColumn(3, v) }

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3FromColumns(m.XAxis().XYZ(), m.YAxis().XYZ(), m.ZAxis().XYZ())
}

// Add returns the component-wise sum.
func (m Mat4) Add(other Mat4) Mat4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns the component-wise difference.
func (m Mat4) Sub(other Mat4) Mat4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// MulScalar scales every component by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec transforms v by m.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Transpose returns m with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	for col := 0; col < 4; col++ {
		for row := col + 1; row < 4; row++ {
			m[col*4+row], m[row*4+col] = m[row*4+col], m[col*4+row]
		}
	}
	return m
}

// Determinant returns the determinant of the upper-left 3x3 block only.
// It is exact for affine transforms; use Determinant4 for anything with a
// projective bottom row.
func (m Mat4) Determinant() float32 {
	return det3(
		m.At(1, 1), m.At(1, 2), m.At(1, 3),
		m.At(2, 1), m.At(2, 2), m.At(2, 3),
		m.At(3, 1), m.At(3, 2), m.At(3, 3),
	)
}

// Determinant4 returns the full 4x4 determinant.
func (m Mat4) Determinant4() float32 {
	_, det := m.adjugate()
	return det
}

// Inverse returns the inverse computed from the adjugate. ok is false when
// the matrix is singular; the receiver is never modified.
func (m Mat4) Inverse() (inv Mat4, ok bool) {
	adj, det := m.adjugate()
	if det == 0 {
		return Mat4{}, false
	}
	return adj.MulScalar(1 / det), true
}

// adjugate returns the classical adjoint together with the determinant,
// both built from the same 2x2 minors.
func (m Mat4) adjugate() (Mat4, float32) {
	a := func(row, col int) float32 { return m[col*4+row] }

	s0 := a(0, 0)*a(1, 1) - a(1, 0)*a(0, 1)
	s1 := a(0, 0)*a(1, 2) - a(1, 0)*a(0, 2)
	s2 := a(0, 0)*a(1, 3) - a(1, 0)*a(0, 3)
	s3 := a(0, 1)*a(1, 2) - a(1, 1)*a(0, 2)
	s4 := a(0, 1)*a(1, 3) - a(1, 1)*a(0, 3)
	s5 := a(0, 2)*a(1, 3) - a(1, 2)*a(0, 3)

	c5 := a(2, 2)*a(3, 3) - a(3, 2)*a(2, 3)
	c4 := a(2, 1)*a(3, 3) - a(3, 1)*a(2, 3)
	c3 := a(2, 1)*a(3, 2) - a(3, 1)*a(2, 2)
	c2 := a(2, 0)*a(3, 3) - a(3, 0)*a(2, 3)
	c1 := a(2, 0)*a(3, 2) - a(3, 0)*a(2, 2)
	c0 := a(2, 0)*a(3, 1) - a(3, 0)*a(2, 1)

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0

	var adj Mat4
	set := func(row, col int, v float32) { adj[col*4+row] = v }

	set(0, 0, a(1, 1)*c5-a(1, 2)*c4+a(1, 3)*c3)
	set(0, 1, -a(0, 1)*c5+a(0, 2)*c4-a(0, 3)*c3)
	set(0, 2, a(3, 1)*s5-a(3, 2)*s4+a(3, 3)*s3)
	set(0, 3, -a(2, 1)*s5+a(2, 2)*s4-a(2, 3)*s3)

	set(1, 0, -a(1, 0)*c5+a(1, 2)*c2-a(1, 3)*c1)
	set(1, 1, a(0, 0)*c5-a(0, 2)*c2+a(0, 3)*c1)
	set(1, 2, -a(3, 0)*s5+a(3, 2)*s2-a(3, 3)*s1)
	set(1, 3, a(2, 0)*s5-a(2, 2)*s2+a(2, 3)*s1)

	set(2, 0, a(1, 0)*c4-a(1, 1)*c2+a(1, 3)*c0)
	set(2, 1, -a(0, 0)*c4+a(0, 1)*c2-a(0, 3)*c0)
	set(2, 2, a(3, 0)*s4-a(3, 1)*s2+a(3, 3)*s0)
	set(2, 3, -a(2, 0)*s4+a(2, 1)*s2-a(2, 3)*s0)

	set(3, 0, -a(1, 0)*c3+a(1, 1)*c1-a(1, 2)*c0)
	set(3, 1, a(0, 0)*c3-a(0, 1)*c1+a(0, 2)*c0)
	set(3, 2, -a(3, 0)*s3+a(3, 1)*s1-a(3, 2)*s0)
	set(3, 3, a(2, 0)*s3-a(2, 1)*s1+a(2, 2)*s0)

	return adj, det
}

// Orthonormalize repairs the rotation part keeping the z axis authoritative.
// Z and the translation are left as is; x and y get w = 0.
func (m Mat4) Orthonormalize() Mat4 {
	z := m.ZAxis()
	y := m.YAxis()
	y = y.Sub(z.MulScalar(z.Dot3(y))).XYZ().Unit().Vec4(0)
	x := y.Cross(z).XYZ().Unit().Vec4(0)
	m.SetXAxis(x)
	m.SetYAxis(y)
	return m
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return float32(float64(degrees) * math.Pi / 180)
}

// Projection returns a symmetric perspective projection. fov is the vertical
// field of view in radians. When near and far are closer than 0.01 the
// receiver is returned unchanged.
func (m Mat4) Projection(fov, aspect, near, far float32) Mat4 {
	if math.Abs(float64(far-near)) <= projectionMinDepth {
		return m
	}
	cotan := float32(1.0 / math.Tan(float64(fov)/2.0))
	nf := 1.0 / (near - far)

	return Mat4{
		cotan / aspect, 0, 0, 0,
		0, cotan, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Orthographic returns an orthographic projection for the given clip planes.
func Orthographic(left, right, top, bottom, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns the view matrix of a camera at eye looking at target.
// The camera basis has its z axis pointing from target back to eye; the
// returned matrix is the inverse of that camera-to-world pose. A degenerate
// setup (eye on target, or up parallel to the view direction) yields the
// identity.
func LookAt(eye, target, up Vec4) Mat4 {
	var pose Mat4
	pose.SetZAxis(eye.Sub(target).XYZ().Unit().Vec4(0))
	pose.SetYAxis(up.XYZ().Vec4(0))
	pose = pose.Orthonormalize()
	pose.SetTranslation(eye.XYZ().Vec4(1))

	view, ok := pose.Inverse()
	if !ok {
		return Identity()
	}
	return view
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m.SetTranslation(v.Vec4(1))
	return m
}

// Scale returns a scale matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	return Mat4FromMat3(Mat3RotateX(angle))
}

// RotateY returns a rotation matrix around the Y axis.
func RotateY(angle float32) Mat4 {
	return Mat4FromMat3(Mat3RotateY(angle))
}

// RotateZ returns a rotation matrix around the Z axis.
func RotateZ(angle float32) Mat4 {
	return Mat4FromMat3(Mat3RotateZ(angle))
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// The axis is normalized first, angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	return Mat4FromMat3(Mat3RotateAxis(axis, angle))
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
