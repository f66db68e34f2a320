package math

// Vec4 is a homogeneous 4-component vector. Points carry w=1, directions w=0.
type Vec4 struct {
	X, Y, Z, W float32
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds s to every component.
func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubScalar subtracts s from every component.
func (v Vec4) SubScalar(s float32) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar returns v * s.
func (v Vec4) MulScalar(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the component-wise quotient. Zero components yield Inf or NaN.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar returns v / s.
func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product over all four components.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Dot3 returns the dot product of the xyz parts.
func (v Vec4) Dot3(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of the xyz parts with w set to 0.
func (v Vec4) Cross(other Vec4) Vec4 {
	return v.XYZ().Cross(other.XYZ()).Vec4(0)
}

// Length returns the magnitude over all four components.
func (v Vec4) Length() float32 {
	return sqrt(v.LengthSqrd())
}

// LengthSqrd returns the squared magnitude over all four components.
func (v Vec4) LengthSqrd() float32 {
	return v.Dot(v)
}

// Length3 returns the magnitude of the xyz part.
func (v Vec4) Length3() float32 {
	return sqrt(v.Length3Sqrd())
}

// Length3Sqrd returns the squared magnitude of the xyz part.
func (v Vec4) Length3Sqrd() float32 {
	return v.Dot3(v)
}

// Distance returns the 4-component distance to other.
func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

// DistanceSqrd returns the squared 4-component distance to other.
func (v Vec4) DistanceSqrd(other Vec4) float32 {
	return v.Sub(other).LengthSqrd()
}

// Distance3 returns the distance between the xyz parts.
func (v Vec4) Distance3(other Vec4) float32 {
	return v.Sub(other).Length3()
}

// Distance3Sqrd returns the squared distance between the xyz parts.
func (v Vec4) Distance3Sqrd(other Vec4) float32 {
	return v.Sub(other).Length3Sqrd()
}

// IsUnit reports whether the magnitude is at most 1.
func (v Vec4) IsUnit() bool {
	return v.Length() <= 1.0
}

// Normalize scales all four components to unit length in place and returns
// the previous length.
func (v *Vec4) Normalize() float32 {
	l := v.Length()
	*v = v.MulScalar(invNorm(l))
	return l
}

// Unit returns a unit-length copy of v.
func (v Vec4) Unit() Vec4 {
	return v.MulScalar(invNorm(v.Length()))
}

// Lerp interpolates from v towards other. t is not clamped.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return other.Sub(v).MulScalar(t).Add(v)
}

// RotateX rotates the (y, z) plane by angle radians. W is untouched.
func (v Vec4) RotateX(angle float32) Vec4 {
	v.Y, v.Z = rotatePlane(v.Y, v.Z, angle)
	return v
}

// RotateY rotates the (x, z) plane by angle radians.
func (v Vec4) RotateY(angle float32) Vec4 {
	v.X, v.Z = rotatePlane(v.X, v.Z, angle)
	return v
}

// RotateZ rotates the (x, y) plane by angle radians.
func (v Vec4) RotateZ(angle float32) Vec4 {
	v.X, v.Y = rotatePlane(v.X, v.Y, angle)
	return v
}

// XYZ drops w.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Array returns the components as a flat slice.
func (v Vec4) Array() []float32 {
	return []float32{v.X, v.Y, v.Z, v.W}
}
