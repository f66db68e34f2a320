package config

import "github.com/Faultbox/hellogl/internal/engine/camera"

// Names returns the configured key name for each camera key.
func (c ControlsConfig) Names() map[camera.Key]string {
	return map[camera.Key]string{
		camera.KeyForward:  c.Forward,
		camera.KeyBackward: c.Backward,
		camera.KeyLeft:     c.Left,
		camera.KeyRight:    c.Right,
		camera.KeyUp:       c.Up,
		camera.KeyDown:     c.Down,
		camera.KeyFast:     c.Fast,
	}
}
