package camera

import "github.com/Faultbox/hellogl/pkg/math"

// PixelsPerRadian converts mouse motion into rotation for the free camera.
const PixelsPerRadian = 150.0

// FreeMovement moves and turns a camera pose (camera-to-world) for one frame.
//
// Forward/backward move along -z/+z of the pose, left/right along x and
// up/down along y; held keys add up. The fast key doubles speed*dt. While
// LookButton is held the basis pitches around its own x axis and then yaws
// around worldUp. Pitch is not clamped.
func FreeMovement(pose math.Mat4, dt, speed float32, worldUp math.Vec4, in InputSnapshot) math.Mat4 {
	right := pose.XAxis()
	up := pose.YAxis()
	forward := pose.ZAxis()
	translation := pose.Translation()

	frameSpeed := dt * speed
	if in.KeyHeld(KeyFast) {
		frameSpeed *= 2
	}

	if in.KeyHeld(KeyForward) {
		translation = translation.Sub(forward.MulScalar(frameSpeed))
	}
	if in.KeyHeld(KeyBackward) {
		translation = translation.Add(forward.MulScalar(frameSpeed))
	}
	if in.KeyHeld(KeyRight) {
		translation = translation.Add(right.MulScalar(frameSpeed))
	}
	if in.KeyHeld(KeyLeft) {
		translation = translation.Sub(right.MulScalar(frameSpeed))
	}
	if in.KeyHeld(KeyUp) {
		translation = translation.Add(up.MulScalar(frameSpeed))
	}
	if in.KeyHeld(KeyDown) {
		translation = translation.Sub(up.MulScalar(frameSpeed))
	}

	if in.ButtonHeld(LookButton) {
		dx, dy := mouseDelta(in)

		// pitch
		if dy != 0 {
			rot := math.RotateAxis(right.XYZ(), -dy/PixelsPerRadian)
			right, up, forward = rot.MulVec(right), rot.MulVec(up), rot.MulVec(forward)
		}
		// yaw
		if dx != 0 {
			rot := math.RotateAxis(worldUp.XYZ(), -dx/PixelsPerRadian)
			right, up, forward = rot.MulVec(right), rot.MulVec(up), rot.MulVec(forward)
		}

		pose.SetXAxis(right)
		pose.SetYAxis(up)
		pose.SetZAxis(forward)
	}

	pose.SetTranslation(translation)
	return pose
}
