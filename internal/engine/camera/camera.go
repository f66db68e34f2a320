// Package camera provides the camera controllers used by the demos. Both
// controllers produce a camera-to-world pose; the view matrix is its inverse.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hellogl/pkg/math"
)

// WorldUp is the default up direction.
var WorldUp = math.Vec4{X: 0, Y: 1, Z: 0, W: 0}

// ZoomKeyRate is how many zoom steps per second a held forward/backward key
// applies to an orbit camera.
const ZoomKeyRate = 4.0

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from target
	Pitch    float32 // Elevation above the target's horizontal plane (radians)
	Yaw      float32 // Heading around the world up axis (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera placed at eye and looking at target.
func NewOrbitCamera(eye, target math.Vec3) OrbitCamera {
	offset := eye.Sub(target)
	dist := offset.Length()

	c := OrbitCamera{
		Target:          target,
		Distance:        dist,
		MinDistance:     1.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 1.0 / PixelsPerRadian,
		ZoomSensitivity: 0.1,
	}
	if dist > 0 {
		c.Pitch = float32(gomath.Asin(float64(offset.Y / dist)))
		c.Yaw = float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))
	}
	c.clamp()
	return c
}

// Position returns the camera position in world space.
func (c OrbitCamera) Position() math.Vec3 {
	sp, cp := gomath.Sincos(float64(c.Pitch))
	sy, cy := gomath.Sincos(float64(c.Yaw))

	return c.Target.Add(math.Vec3{
		X: c.Distance * float32(cp*sy),
		Y: c.Distance * float32(sp),
		Z: c.Distance * float32(cp*cy),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position().Vec4(1), c.Target.Vec4(1), WorldUp)
}

// Pose returns the camera-to-world transform.
func (c OrbitCamera) Pose() (math.Mat4, bool) {
	return c.ViewMatrix().Inverse()
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom updates distance based on a zoom delta; positive zooms in.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

// Update applies one frame of input: LookButton drags rotate, forward and
// backward keys zoom.
func (c *OrbitCamera) Update(dt float32, in InputSnapshot) {
	if in.ButtonHeld(LookButton) {
		dx, dy := mouseDelta(in)
		if dx != 0 || dy != 0 {
			c.HandleDrag(dx, dy)
		}
	}
	if in.KeyHeld(KeyForward) {
		c.HandleZoom(dt * ZoomKeyRate)
	}
	if in.KeyHeld(KeyBackward) {
		c.HandleZoom(-dt * ZoomKeyRate)
	}
}

func (c *OrbitCamera) clamp() {
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
