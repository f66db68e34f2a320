package math

// Mat3 is a 3x3 rotation/scale basis in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
//
// The columns are the x, y and z axes of the basis.
type Mat3 [9]float32

// Mat3Identity returns the 3x3 identity.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromColumns builds a matrix from its three axis columns.
func Mat3FromColumns(x, y, z Vec3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// At returns element m{row}{col}, both 1-based.
func (m Mat3) At(row, col int) float32 {
	return m[(col-1)*3+row-1]
}

// XAxis returns the first column.
func (m Mat3) XAxis() Vec3 { return Vec3{m[0], m[1], m[2]} }

// YAxis returns the second column.
func (m Mat3) YAxis() Vec3 { return Vec3{m[3], m[4], m[5]} }

// ZAxis returns the third column.
func (m Mat3) ZAxis() Vec3 { return Vec3{m[6], m[7], m[8]} }

// SetXAxis replaces the first column.
func (m *Mat3) SetXAxis(v Vec3) { m[0], m[1], m[2] = v.X, v.Y, v.Z }

// SetYAxis replaces the second column.
func (m *Mat3) SetYAxis(v Vec3) { m[3], m[4], m[5] = v.X, v.Y, v.Z }

// SetZAxis replaces the third column.
func (m *Mat3) SetZAxis(v Vec3) { m[6], m[7], m[8] = v.X, v.Y, v.Z }

// Add returns the component-wise sum.
func (m Mat3) Add(other Mat3) Mat3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns the component-wise difference.
func (m Mat3) Sub(other Mat3) Mat3 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// MulScalar scales every component by s.
func (m Mat3) MulScalar(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns the matrix product m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// MulVec transforms v by m.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns m with rows and columns swapped.
func (m Mat3) Transpose() Mat3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Determinant expands along the first column.
func (m Mat3) Determinant() float32 {
	return det3(
		m.At(1, 1), m.At(1, 2), m.At(1, 3),
		m.At(2, 1), m.At(2, 2), m.At(2, 3),
		m.At(3, 1), m.At(3, 2), m.At(3, 3),
	)
}

// Inverse returns the adjugate scaled by 1/det. ok is false for a singular
// matrix, in which case the zero matrix is returned.
func (m Mat3) Inverse() (inv Mat3, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, false
	}
	a, b, c := m.At(1, 1), m.At(1, 2), m.At(1, 3)
	d, e, f := m.At(2, 1), m.At(2, 2), m.At(2, 3)
	g, h, i := m.At(3, 1), m.At(3, 2), m.At(3, 3)

	inv = Mat3{
		e*i - f*h, f*g - d*i, d*h - e*g,
		c*h - b*i, a*i - c*g, b*g - a*h,
		b*f - c*e, c*d - a*f, a*e - b*d,
	}
	return inv.MulScalar(1 / det), true
}

// Orthonormalize repairs the basis keeping the z axis authoritative: y is made
// perpendicular to z and x is rebuilt from y and z. Z is left as is.
func (m Mat3) Orthonormalize() Mat3 {
	z := m.ZAxis()
	y := m.YAxis()
	y = y.Sub(z.MulScalar(z.Dot(y))).Unit()
	x := y.Cross(z).Unit()
	m.SetXAxis(x)
	m.SetYAxis(y)
	return m
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// Mat3LookAt builds the basis whose z axis points from eye to target.
func Mat3LookAt(eye, target, up Vec3) Mat3 {
	var m Mat3
	m.SetZAxis(target.Sub(eye).Unit())
	m.SetYAxis(up)
	return m.Orthonormalize()
}

// Mat3RotateX returns a rotation of angle radians around the X axis.
func Mat3RotateX(angle float32) Mat3 {
	s, c := sincos(angle)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// Mat3RotateY returns a rotation of angle radians around the Y axis.
func Mat3RotateY(angle float32) Mat3 {
	s, c := sincos(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// Mat3RotateZ returns a rotation of angle radians around the Z axis.
func Mat3RotateZ(angle float32) Mat3 {
	s, c := sincos(angle)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Mat3RotateAxis returns a rotation of angle radians around axis.
// The axis is normalized first.
func Mat3RotateAxis(axis Vec3, angle float32) Mat3 {
	s, c := sincos(angle)
	t := 1 - c
	a := axis.Unit()
	x, y, z := a.X, a.Y, a.Z

	return Mat3{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	}
}

// Mat3Scale returns a diagonal scale matrix.
func Mat3Scale(v Vec3) Mat3 {
	return Mat3{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	}
}

// det3 evaluates the 3x3 determinant of row-major m11..m33.
func det3(m11, m12, m13, m21, m22, m23, m31, m32, m33 float32) float32 {
	return m11*(m22*m33-m23*m32) +
		m21*(m32*m13-m12*m33) +
		m31*(m12*m23-m22*m13)
}
