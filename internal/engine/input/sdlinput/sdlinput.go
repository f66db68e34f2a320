// Package sdlinput converts SDL2 events into input.Events.
package sdlinput

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hellogl/internal/engine/camera"
	"github.com/Faultbox/hellogl/internal/engine/input"
)

// Poller drains the SDL event queue once per frame.
type Poller struct {
	events []input.Event
}

// New creates a new poller.
func New() *Poller {
	return &Poller{
		events: make([]input.Event, 0, 16),
	}
}

// Update polls SDL events and converts them to input events.
// Returns true if the application should quit.
func (p *Poller) Update() bool {
	p.events = p.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			p.events = append(p.events, input.Event{Type: input.EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				p.events = append(p.events, input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				p.events = append(p.events, input.Event{
					Type: input.EventKeyDown,
					Key:  input.Scancode(e.Keysym.Scancode),
				})
			} else if e.Type == sdl.KEYUP {
				p.events = append(p.events, input.Event{
					Type: input.EventKeyUp,
					Key:  input.Scancode(e.Keysym.Scancode),
				})
			}

		case *sdl.MouseMotionEvent:
			p.events = append(p.events, input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			typ := input.EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = input.EventMouseDown
			}
			p.events = append(p.events, input.Event{
				Type:   typ,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (p *Poller) Events() []input.Event {
	return p.events
}

// Scancode resolves an SDL key name such as "W" or "Left Shift".
func Scancode(name string) (input.Scancode, error) {
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return input.ScancodeUnknown, fmt.Errorf("unknown key name %q", name)
	}
	return input.Scancode(sc), nil
}

// Bindings resolves key names for each camera key. Keys missing from names
// keep their default binding.
func Bindings(names map[camera.Key]string) (input.Bindings, error) {
	b := input.DefaultBindings()
	for key, name := range names {
		if name == "" {
			continue
		}
		sc, err := Scancode(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
		b[key] = sc
	}
	return b, nil
}
