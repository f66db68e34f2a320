// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/Faultbox/hellogl/pkg/math"
)

// Config holds all application settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds projection and frame clear settings.
type RenderConfig struct {
	ClearColour string  `yaml:"clear_colour"` // SVG colour name, e.g. "black"
	FOV         float32 `yaml:"fov"`          // vertical field of view in degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// CameraConfig holds the initial camera placement and movement speed.
type CameraConfig struct {
	Speed   float32    `yaml:"speed"` // units per second
	Eye     [3]float32 `yaml:"eye"`
	Target  [3]float32 `yaml:"target"`
	WorldUp [3]float32 `yaml:"world_up"`
}

// ControlsConfig holds SDL scancode names for camera movement.
type ControlsConfig struct {
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Fast     string `yaml:"fast"`
}

// DemoConfig selects the scene to run.
type DemoConfig struct {
	Name      string `yaml:"name"`
	ShaderDir string `yaml:"shader_dir"` // empty uses the embedded shaders
	Texture   string `yaml:"texture"`    // image file; empty uses a checker pattern

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "hellogl",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			ClearColour: "black",
			FOV:         45,
			Near:        0.1,
			Far:         1000,
		},
		Camera: CameraConfig{
			Speed:   10,
			Eye:     [3]float32{10, 10, 10},
			Target:  [3]float32{0, 0, 0},
			WorldUp: [3]float32{0, 1, 0},
		},
		Controls: ControlsConfig{
			Forward:  "W",
			Backward: "S",
			Left:     "A",
			Right:    "D",
			Up:       "Q",
			Down:     "E",
			Fast:     "Left Shift",
		},
		Demo: DemoConfig{
			Name:          "camera",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would make the renderer or camera misbehave.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Render.FOV <= 0 || c.Render.FOV >= 180 {
		return fmt.Errorf("fov %v must be within (0, 180) degrees", c.Render.FOV)
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		return fmt.Errorf("clip planes near=%v far=%v must satisfy 0 < near < far", c.Render.Near, c.Render.Far)
	}
	if _, err := c.Render.ClearRGBA(); err != nil {
		return err
	}
	if c.Camera.Speed < 0 {
		return fmt.Errorf("camera speed %v must not be negative", c.Camera.Speed)
	}
	if c.Camera.WorldUp == [3]float32{} {
		return fmt.Errorf("camera world_up must not be zero")
	}
	return nil
}

// ClearRGBA resolves the clear colour name.
func (r RenderConfig) ClearRGBA() (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(r.ClearColour))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown clear colour %q", r.ClearColour)
	}
	return c, nil
}

// FOVRadians returns the field of view in radians.
func (r RenderConfig) FOVRadians() float32 {
	return math.Radians(r.FOV)
}

// EyePoint returns the eye as a homogeneous point.
func (c CameraConfig) EyePoint() math.Vec4 {
	return math.Vec3{X: c.Eye[0], Y: c.Eye[1], Z: c.Eye[2]}.Vec4(1)
}

// TargetPoint returns the target as a homogeneous point.
func (c CameraConfig) TargetPoint() math.Vec4 {
	return math.Vec3{X: c.Target[0], Y: c.Target[1], Z: c.Target[2]}.Vec4(1)
}

// Up returns the world up direction (w = 0).
func (c CameraConfig) Up() math.Vec4 {
	return math.Vec3{X: c.WorldUp[0], Y: c.WorldUp[1], Z: c.WorldUp[2]}.Vec4(0)
}
