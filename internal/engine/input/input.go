// Package input tracks keyboard and mouse state between frames. It is fed
// with backend-neutral events; sdlinput produces them from SDL2.
package input

import "github.com/Faultbox/hellogl/internal/engine/camera"

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Scancode is a physical key code (USB HID usage, as used by SDL2).
type Scancode uint32

// Scancodes used by the default bindings and the application.
const (
	ScancodeUnknown Scancode = 0
	ScancodeA       Scancode = 4
	ScancodeD       Scancode = 7
	ScancodeE       Scancode = 8
	ScancodeQ       Scancode = 20
	ScancodeS       Scancode = 22
	ScancodeW       Scancode = 26
	ScancodeEscape  Scancode = 41
	ScancodeF12     Scancode = 69
	ScancodeLShift  Scancode = 225
)

// Mouse buttons as numbered by SDL2.
const (
	MouseLeft   uint8 = 1
	MouseMiddle uint8 = 2
	MouseRight  uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Bindings maps abstract camera keys to scancodes.
type Bindings map[camera.Key]Scancode

// DefaultBindings returns WASD movement, Q/E for up/down and left shift for
// fast movement.
func DefaultBindings() Bindings {
	return Bindings{
		camera.KeyForward:  ScancodeW,
		camera.KeyBackward: ScancodeS,
		camera.KeyLeft:     ScancodeA,
		camera.KeyRight:    ScancodeD,
		camera.KeyUp:       ScancodeQ,
		camera.KeyDown:     ScancodeE,
		camera.KeyFast:     ScancodeLShift,
	}
}

func buttonCode(b camera.MouseButton) uint8 {
	switch b {
	case camera.ButtonLeft:
		return MouseLeft
	case camera.ButtonMiddle:
		return MouseMiddle
	case camera.ButtonRight:
		return MouseRight
	default:
		return 0
	}
}
