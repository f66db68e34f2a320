package demo

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hellogl/internal/engine/camera"
	"github.com/Faultbox/hellogl/internal/logger"
	"github.com/Faultbox/hellogl/pkg/math"
)

// Model spin rates in radians per second.
const (
	SpinRateX = 3.0
	SpinRateZ = 2.0
)

// Settings are the inputs NewFrameState derives the first frame from.
type Settings struct {
	FOV    float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	Eye     math.Vec4
	Target  math.Vec4
	WorldUp math.Vec4
	Speed   float32

	Mode CameraMode
	Spin bool
}

// FrameState is everything the loop carries from one frame to the next.
type FrameState struct {
	Settings Settings

	Projection math.Mat4
	Camera     math.Mat4 // camera-to-world pose
	View       math.Mat4 // inverse of Camera
	Model      math.Mat4

	Orbit camera.OrbitCamera
}

// NewFrameState builds the projection from the settings and places the
// camera at Eye looking at Target.
func NewFrameState(s Settings) FrameState {
	f := FrameState{
		Settings:   s,
		Projection: math.Identity().Projection(s.FOV, s.Aspect, s.Near, s.Far),
		Camera:     math.Identity(),
		View:       math.Identity(),
		Model:      math.Identity(),
		Orbit:      camera.NewOrbitCamera(s.Eye.XYZ(), s.Target.XYZ()),
	}

	view := math.LookAt(s.Eye, s.Target, s.WorldUp)
	pose, ok := view.Inverse()
	if !ok {
		logger.Warn("initial view is not invertible, using identity camera")
		return f
	}
	f.Camera = pose
	f.View = view
	return f
}

// Resize rebuilds the projection for a new viewport size. A zero height keeps
// the previous projection.
func (f FrameState) Resize(width, height int) FrameState {
	if width <= 0 || height <= 0 {
		return f
	}
	f.Settings.Aspect = float32(width) / float32(height)
	f.Projection = f.Projection.Projection(f.Settings.FOV, f.Settings.Aspect, f.Settings.Near, f.Settings.Far)
	return f
}

// Step advances the frame by dt seconds. The model spins when enabled and
// the camera moves according to the mode. A new pose is only committed when
// it can be inverted into a view matrix.
func Step(f FrameState, dt float32, in camera.InputSnapshot) FrameState {
	if f.Settings.Spin {
		f.Model = f.Model.Mul(math.RotateX(SpinRateX * dt)).Mul(math.RotateZ(SpinRateZ * dt))
	}

	pose := f.Camera
	switch f.Settings.Mode {
	case CameraFree:
		pose = camera.FreeMovement(f.Camera, dt, f.Settings.Speed, f.Settings.WorldUp, in)
	case CameraOrbit:
		orbit := f.Orbit
		orbit.Update(dt, in)
		p, ok := orbit.Pose()
		if !ok {
			logger.Warn("orbit pose is not invertible, keeping previous camera",
				zap.Float32("distance", orbit.Distance))
			return f
		}
		f.Orbit = orbit
		pose = p
	case CameraFixed:
		return f
	}

	view, ok := pose.Inverse()
	if !ok {
		logger.Warn("camera pose is not invertible, keeping previous view")
		return f
	}
	f.Camera = pose
	f.View = view
	return f
}
