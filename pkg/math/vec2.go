// Package math provides the vector and matrix types shared by the demos and
// the rendering pipeline. Matrices are column-major and can be uploaded as is.
package math

import "math"

// Epsilon is the float32 machine epsilon. Normalizing a zero-length vector
// scales by Epsilon instead of dividing by zero.
const Epsilon float32 = 0x1p-23

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s float32) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// MulScalar returns v * s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns the component-wise quotient. Zero components yield Inf or NaN.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// DivScalar returns v / s. A zero s yields Inf or NaN.
func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return sqrt(v.LengthSqrd())
}

// LengthSqrd returns the squared magnitude.
func (v Vec2) LengthSqrd() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// DistanceSqrd returns the squared distance to another point.
func (v Vec2) DistanceSqrd(other Vec2) float32 {
	return v.Sub(other).LengthSqrd()
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// IsUnit reports whether the magnitude is at most 1.
func (v Vec2) IsUnit() bool {
	return v.Length() <= 1.0
}

// Normalize scales v to unit length in place and returns the length it had
// before scaling.
func (v *Vec2) Normalize() float32 {
	l := v.Length()
	inv := invNorm(l)
	v.X *= inv
	v.Y *= inv
	return l
}

// Unit returns a unit-length copy of v.
func (v Vec2) Unit() Vec2 {
	return v.MulScalar(invNorm(v.Length()))
}

// Perp returns v rotated 90 degrees: (y, -x).
func (v Vec2) Perp() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Lerp interpolates from v towards other. t is not clamped.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return other.Sub(v).MulScalar(t).Add(v)
}

// Rotate returns v rotated by angle radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	x, y := rotatePlane(v.X, v.Y, angle)
	return Vec2{x, y}
}

// Array returns the components as a flat slice.
func (v Vec2) Array() []float32 {
	return []float32{v.X, v.Y}
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sincos(angle float32) (s, c float32) {
	sn, cs := math.Sincos(float64(angle))
	return float32(sn), float32(cs)
}

// invNorm is the scale factor that normalizes a vector of length l.
func invNorm(l float32) float32 {
	if l != 0 {
		return 1 / l
	}
	return Epsilon
}

// rotatePlane rotates the pair (a, b) by angle in its own plane.
func rotatePlane(a, b, angle float32) (float32, float32) {
	s, c := sincos(angle)
	return a*c - b*s, a*s + b*c
}
