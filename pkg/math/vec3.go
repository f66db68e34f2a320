package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar returns v * s.
func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the component-wise quotient. Zero components yield Inf or NaN.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar returns v / s.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return sqrt(v.LengthSqrd())
}

// LengthSqrd returns the squared magnitude.
func (v Vec3) LengthSqrd() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// DistanceSqrd returns the squared distance to another point.
func (v Vec3) DistanceSqrd(other Vec3) float32 {
	return v.Sub(other).LengthSqrd()
}

// IsUnit reports whether the magnitude is at most 1.
func (v Vec3) IsUnit() bool {
	return v.Length() <= 1.0
}

// Normalize scales v to unit length in place and returns the previous length.
func (v *Vec3) Normalize() float32 {
	l := v.Length()
	*v = v.MulScalar(invNorm(l))
	return l
}

// Unit returns a unit-length copy of v.
func (v Vec3) Unit() Vec3 {
	return v.MulScalar(invNorm(v.Length()))
}

// Lerp interpolates from v towards other. t is not clamped.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return other.Sub(v).MulScalar(t).Add(v)
}

// RotateX rotates the (y, z) plane by angle radians.
func (v Vec3) RotateX(angle float32) Vec3 {
	v.Y, v.Z = rotatePlane(v.Y, v.Z, angle)
	return v
}

// RotateY rotates the (x, z) plane by angle radians.
func (v Vec3) RotateY(angle float32) Vec3 {
	v.X, v.Z = rotatePlane(v.X, v.Z, angle)
	return v
}

// RotateZ rotates the (x, y) plane by angle radians.
func (v Vec3) RotateZ(angle float32) Vec3 {
	v.X, v.Y = rotatePlane(v.X, v.Y, angle)
	return v
}

// Vec4 extends v with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Array returns the components as a flat slice.
func (v Vec3) Array() []float32 {
	return []float32{v.X, v.Y, v.Z}
}
