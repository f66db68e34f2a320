package camera

// Key is an abstract movement key. Concrete key codes are bound by the input
// layer.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFast
)

var keyNames = [...]string{"forward", "backward", "left", "right", "up", "down", "fast"}

// String returns the binding name of the key.
func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Keys lists every abstract key.
func Keys() []Key {
	return []Key{KeyForward, KeyBackward, KeyLeft, KeyRight, KeyUp, KeyDown, KeyFast}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// LookButton is the button that has to be held to rotate a camera.
const LookButton = ButtonLeft

// InputSnapshot is the per-frame view of keyboard and mouse state that camera
// controllers read. SetPreviousMousePosition is the only mutation a controller
// performs on it.
type InputSnapshot interface {
	KeyHeld(k Key) bool
	ButtonHeld(b MouseButton) bool
	MousePosition() (x, y float32)
	PreviousMousePosition() (x, y float32)
	SetPreviousMousePosition(x, y float32)
}

// mouseDelta returns the motion since the previous position and records the
// current position as the new previous one.
func mouseDelta(in InputSnapshot) (dx, dy float32) {
	x, y := in.MousePosition()
	px, py := in.PreviousMousePosition()
	in.SetPreviousMousePosition(x, y)
	return x - px, y - py
}
