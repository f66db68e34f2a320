package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hellogl/pkg/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	keys         map[Key]bool
	buttons      map[MouseButton]bool
	x, y, px, py float32
}

func newFakeInput(keys ...Key) *fakeInput {
	in := &fakeInput{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
	for _, k := range keys {
		in.keys[k] = true
	}
	return in
}

func (f *fakeInput) drag(dx, dy float32) *fakeInput {
	f.buttons[LookButton] = true
	f.px, f.py = 100, 100
	f.x, f.y = 100+dx, 100+dy
	return f
}

func (f *fakeInput) KeyHeld(k Key) bool { return f.keys[k] }
func (f *fakeInput) ButtonHeld(b MouseButton) bool { return f.buttons[b] }
func (f *fakeInput) MousePosition() (float32, float32) { return f.x, f.y }
func (f *fakeInput) PreviousMousePosition() (x, y float32) { return f.px, f.py }
func (f *fakeInput) SetPreviousMousePosition(x, y float32) { f.px, f.py = x, y }

func assertVecInDelta(t *testing.T, want, got math.Vec4) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "x: want %v got %v", want, got)
	assert.InDelta(t, want.Y, got.Y, 1e-5, "y: want %v got %v", want, got)
	assert.InDelta(t, want.Z, got.Z, 1e-5, "z: want %v got %v", want, got)
	assert.InDelta(t, want.W, got.W, 1e-5, "w: want %v got %v", want, got)
}

func assertOrthonormal(t *testing.T, pose math.Mat4) {
	t.Helper()
	x, y, z := pose.XAxis(), pose.YAxis(), pose.ZAxis()
	assert.InDelta(t, 1, x.Length3(), 1e-4)
	assert.InDelta(t, 1, y.Length3(), 1e-4)
	assert.InDelta(t, 1, z.Length3(), 1e-4)
	assert.InDelta(t, 0, x.Dot3(y), 1e-4)
	assert.InDelta(t, 0, x.Dot3(z), 1e-4)
	assert.InDelta(t, 0, y.Dot3(z), 1e-4)
}

func TestFreeMovementForward(t *testing.T) {
	pose := math.Identity()
	got := FreeMovement(pose, 0.1, 10, WorldUp, newFakeInput(KeyForward))

	assertVecInDelta(t, math.Vec4{X: 0, Y: 0, Z: -1, W: 1}, got.Translation())
	assert.Equal(t, pose.ZAxis(), got.ZAxis())
	assert.Equal(t, math.Identity(), pose, "input pose is a value and stays untouched")
}

func TestFreeMovementDirections(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want math.Vec4
	}{
		{"none", nil, math.Vec4{W: 1}},
		{"backward", []Key{KeyBackward}, math.Vec4{Z: 1, W: 1}},
		{"right", []Key{KeyRight}, math.Vec4{X: 1, W: 1}},
		{"left", []Key{KeyLeft}, math.Vec4{X: -1, W: 1}},
		{"up", []Key{KeyUp}, math.Vec4{Y: 1, W: 1}},
		{"down", []Key{KeyDown}, math.Vec4{Y: -1, W: 1}},
		{"forward and backward cancel", []Key{KeyForward, KeyBackward}, math.Vec4{W: 1}},
		{"diagonal", []Key{KeyForward, KeyRight, KeyUp}, math.Vec4{X: 1, Y: 1, Z: -1, W: 1}},
		{"fast doubles", []Key{KeyForward, KeyFast}, math.Vec4{Z: -2, W: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeMovement(math.Identity(), 0.5, 2, WorldUp, newFakeInput(tt.keys...))
			assertVecInDelta(t, tt.want, got.Translation())
		})
	}
}

func TestFreeMovementFollowsPoseAxes(t *testing.T) {
	// Camera turned 90 degrees to the left: its forward (-z) is world -x.
	pose := math.RotateY(float32(gomath.Pi / 2))
	pose.SetTranslation(math.Vec4{X: 5, Y: 0, Z: 5, W: 1})

	got := FreeMovement(pose, 1, 1, WorldUp, newFakeInput(KeyForward))
	assertVecInDelta(t, math.Vec4{X: 4, Y: 0, Z: 5, W: 1}, got.Translation())
}

func TestFreeMovementNoRotationWithoutButton(t *testing.T) {
	in := newFakeInput()
	in.x, in.y = 300, 400

	got := FreeMovement(math.Identity(), 0.016, 10, WorldUp, in)
	assert.Equal(t, math.Identity(), got)
	px, py := in.PreviousMousePosition()
	assert.Equal(t, float32(0), px, "previous position only moves while dragging")
	assert.Equal(t, float32(0), py)
}

func TestFreeMovementPitch(t *testing.T) {
	in := newFakeInput().drag(0, -PixelsPerRadian*gomath.Pi/2)

	got := FreeMovement(math.Identity(), 0.016, 10, WorldUp, in)

	// Dragging up pitches a quarter turn around the right axis.
	assertVecInDelta(t, math.Vec4{X: 1}, got.XAxis())
	assertVecInDelta(t, math.Vec4{Z: 1}, got.YAxis())
	assertVecInDelta(t, math.Vec4{Y: -1}, got.ZAxis())
	assert.Equal(t, math.Vec4{W: 1}, got.Translation())
	assertOrthonormal(t, got)
}

func TestFreeMovementYaw(t *testing.T) {
	in := newFakeInput().drag(PixelsPerRadian*gomath.Pi/2, 0)

	got := FreeMovement(math.Identity(), 0.016, 10, WorldUp, in)

	assertVecInDelta(t, math.Vec4{Z: 1}, got.XAxis())
	assertVecInDelta(t, math.Vec4{Y: 1}, got.YAxis())
	assertVecInDelta(t, math.Vec4{X: -1}, got.ZAxis())
	assertOrthonormal(t, got)
}

func TestFreeMovementUpdatesPreviousMouse(t *testing.T) {
	in := newFakeInput().drag(12, -7)
	FreeMovement(math.Identity(), 0.016, 10, WorldUp, in)

	px, py := in.PreviousMousePosition()
	assert.Equal(t, float32(112), px)
	assert.Equal(t, float32(93), py)

	// A second frame without further motion leaves the pose alone.
	pose := math.Identity()
	got := FreeMovement(pose, 0.016, 10, WorldUp, in)
	assert.Equal(t, pose, got)
}

func TestFreeMovementStaysOrthonormal(t *testing.T) {
	pose := math.LookAt(math.Vec4{X: 10, Y: 10, Z: 10, W: 1}, math.Vec4{W: 1}, WorldUp)
	pose, ok := pose.Inverse()
	require.True(t, ok)

	in := newFakeInput(KeyForward, KeyLeft)
	for i := 0; i < 200; i++ {
		in.buttons[LookButton] = true
		in.x += float32(i%7) - 3
		in.y += float32(i%5) - 2
		pose = FreeMovement(pose, 0.016, 10, WorldUp, in)
	}
	assertOrthonormal(t, pose)
	assert.InDelta(t, 1, pose.Translation().W, 1e-6)
}

func TestNewOrbitCamera(t *testing.T) {
	eye := math.Vec3{X: 10, Y: 10, Z: 10}
	c := NewOrbitCamera(eye, math.Vec3{})

	pos := c.Position()
	assert.InDelta(t, eye.X, pos.X, 1e-4)
	assert.InDelta(t, eye.Y, pos.Y, 1e-4)
	assert.InDelta(t, eye.Z, pos.Z, 1e-4)

	p := c.ViewMatrix().MulVec(math.Vec4{W: 1})
	assert.Less(t, p.Z, float32(0), "target is in front of the camera")

	pose, ok := c.Pose()
	require.True(t, ok)
	assert.InDelta(t, eye.X, pose.Translation().X, 1e-3)
	assertOrthonormal(t, pose)
}

func TestOrbitDragAndClamp(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Z: 20}, math.Vec3{})
	require.InDelta(t, 0, c.Yaw, 1e-6)

	c.HandleDrag(30, 0)
	assert.InDelta(t, -30.0/PixelsPerRadian, c.Yaw, 1e-6)
	assert.InDelta(t, 20, c.Position().Length(), 1e-3, "drag keeps distance")

	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.Pitch)
}

func TestOrbitZoom(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Z: 20}, math.Vec3{})
	c.HandleZoom(1)
	assert.InDelta(t, 18, c.Distance, 1e-4)

	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
}

func TestOrbitUpdate(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Z: 20}, math.Vec3{})
	in := newFakeInput(KeyForward).drag(15, 0)

	c.Update(0.25, in)

	assert.InDelta(t, -0.1, c.Yaw, 1e-5)
	assert.InDelta(t, 18, c.Distance, 1e-4)
	px, _ := in.PreviousMousePosition()
	assert.Equal(t, float32(115), px)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "forward", KeyForward.String())
	assert.Equal(t, "fast", KeyFast.String())
	assert.Equal(t, "unknown", Key(42).String())
	assert.Len(t, Keys(), 7)
}
