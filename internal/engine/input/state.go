package input

import "github.com/Faultbox/hellogl/internal/engine/camera"

// State accumulates held keys, held buttons and mouse positions from events.
// It satisfies camera.InputSnapshot.
type State struct {
	bindings Bindings

	held    map[Scancode]bool
	pressed map[Scancode]bool
	buttons map[uint8]bool

	x, y   float32
	px, py float32

	quit          bool
	width, height int
	resized       bool
}

var _ camera.InputSnapshot = (*State)(nil)

// NewState creates an empty state using the given bindings.
func NewState(bindings Bindings) *State {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &State{
		bindings: bindings,
		held:     make(map[Scancode]bool),
		pressed:  make(map[Scancode]bool),
		buttons:  make(map[uint8]bool),
	}
}

// Apply folds one frame worth of events into the state. Per-frame flags
// (pressed keys, resize) only reflect the events of this call.
func (s *State) Apply(events []Event) {
	clear(s.pressed)
	s.resized = false

	for _, e := range events {
		switch e.Type {
		case EventQuit:
			s.quit = true
		case EventWindowResize:
			s.resized = true
			s.width, s.height = e.Width, e.Height
		case EventKeyDown:
			if !s.held[e.Key] {
				s.pressed[e.Key] = true
			}
			s.held[e.Key] = true
		case EventKeyUp:
			delete(s.held, e.Key)
		case EventMouseMove:
			s.x, s.y = float32(e.MouseX), float32(e.MouseY)
		case EventMouseDown:
			s.buttons[e.Button] = true
			// A new drag measures from the click point.
			s.x, s.y = float32(e.MouseX), float32(e.MouseY)
			s.px, s.py = s.x, s.y
		case EventMouseUp:
			delete(s.buttons, e.Button)
		}
	}
}

// Quit reports whether a quit event has been seen.
func (s *State) Quit() bool {
	return s.quit
}

// Resized returns the new window size if a resize happened this frame.
func (s *State) Resized() (width, height int, ok bool) {
	return s.width, s.height, s.resized
}

// Held reports whether the scancode is currently down.
func (s *State) Held(sc Scancode) bool {
	return s.held[sc]
}

// Pressed reports whether the scancode went down this frame.
func (s *State) Pressed(sc Scancode) bool {
	return s.pressed[sc]
}

// KeyHeld reports whether the key bound to k is down.
func (s *State) KeyHeld(k camera.Key) bool {
	sc, ok := s.bindings[k]
	return ok && s.held[sc]
}

// ButtonHeld reports whether mouse button b is down.
func (s *State) ButtonHeld(b camera.MouseButton) bool {
	return s.buttons[buttonCode(b)]
}

// MousePosition returns the latest cursor position.
func (s *State) MousePosition() (x, y float32) {
	return s.x, s.y
}

// PreviousMousePosition returns the position recorded by the last drag step.
func (s *State) PreviousMousePosition() (x, y float32) {
	return s.px, s.py
}

// SetPreviousMousePosition records the position a drag step consumed.
func (s *State) SetPreviousMousePosition(x, y float32) {
	s.px, s.py = x, y
}
