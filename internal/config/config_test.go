package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/hellogl/internal/engine/camera"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test render defaults
	if cfg.Render.FOV != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Render.FOV)
	}
	if cfg.Render.Near != 0.1 || cfg.Render.Far != 1000 {
		t.Errorf("expected clip planes 0.1/1000, got %v/%v", cfg.Render.Near, cfg.Render.Far)
	}

	// Test camera defaults
	if cfg.Camera.Speed != 10 {
		t.Errorf("expected camera speed 10, got %v", cfg.Camera.Speed)
	}
	if cfg.Camera.Eye != [3]float32{10, 10, 10} {
		t.Errorf("expected eye (10,10,10), got %v", cfg.Camera.Eye)
	}

	// Test demo defaults
	if cfg.Demo.Name != "camera" {
		t.Errorf("expected demo 'camera', got %s", cfg.Demo.Name)
	}

	if cfg.Demo.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Demo.ScreenshotDir)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

render:
  clear_colour: "CornflowerBlue"
  fov: 60
  near: 0.5
  far: 200

camera:
  speed: 4
  eye: [0, 2, 8]
  target: [0, 1, 0]

controls:
  forward: "Up"
  fast: "Right Shift"

demo:
  name: "orbit"
  shader_dir: "shaders"
  texture: "images/pattern.tga"

logging:
  level: "debug"
  log_file: "hellogl.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Render.FOV != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Render.FOV)
	}
	rgba, err := cfg.Render.ClearRGBA()
	if err != nil {
		t.Fatalf("expected clear colour to resolve: %v", err)
	}
	if rgba != (color.RGBA{0x64, 0x95, 0xed, 0xff}) {
		t.Errorf("expected cornflowerblue, got %v", rgba)
	}

	if cfg.Camera.Speed != 4 {
		t.Errorf("expected camera speed 4, got %v", cfg.Camera.Speed)
	}
	if cfg.Camera.Eye != [3]float32{0, 2, 8} {
		t.Errorf("expected eye (0,2,8), got %v", cfg.Camera.Eye)
	}
	if cfg.Camera.WorldUp != [3]float32{0, 1, 0} {
		t.Errorf("expected world up to keep its default, got %v", cfg.Camera.WorldUp)
	}

	if cfg.Controls.Forward != "Up" {
		t.Errorf("expected forward key 'Up', got %s", cfg.Controls.Forward)
	}
	if cfg.Controls.Backward != "S" {
		t.Errorf("expected backward key to keep default 'S', got %s", cfg.Controls.Backward)
	}

	if cfg.Demo.Name != "orbit" {
		t.Errorf("expected demo 'orbit', got %s", cfg.Demo.Name)
	}
	if cfg.Demo.ShaderDir != "shaders" {
		t.Errorf("expected shader dir 'shaders', got %s", cfg.Demo.ShaderDir)
	}
	if cfg.Demo.Texture != "images/pattern.tga" {
		t.Errorf("expected texture 'images/pattern.tga', got %s", cfg.Demo.Texture)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "hellogl.log" {
		t.Errorf("expected log file 'hellogl.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"zero fov", func(c *Config) { c.Render.FOV = 0 }},
		{"straight fov", func(c *Config) { c.Render.FOV = 180 }},
		{"zero near", func(c *Config) { c.Render.Near = 0 }},
		{"far before near", func(c *Config) { c.Render.Far = 0.05 }},
		{"unknown colour", func(c *Config) { c.Render.ClearColour = "not-a-colour" }},
		{"negative speed", func(c *Config) { c.Camera.Speed = -1 }},
		{"zero world up", func(c *Config) { c.Camera.WorldUp = [3]float32{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestClearRGBA(t *testing.T) {
	r := RenderConfig{ClearColour: " Black "}
	c, err := r.ClearRGBA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("expected opaque black, got %v", c)
	}
}

func TestCameraVectors(t *testing.T) {
	c := Default().Camera
	eye := c.EyePoint()
	if eye.X != 10 || eye.Y != 10 || eye.Z != 10 || eye.W != 1 {
		t.Errorf("expected eye point (10,10,10,1), got %v", eye)
	}
	if target := c.TargetPoint(); target.W != 1 {
		t.Errorf("expected target w 1, got %v", target.W)
	}
	up := c.Up()
	if up.Y != 1 || up.W != 0 {
		t.Errorf("expected up direction (0,1,0,0), got %v", up)
	}
}

func TestFOVRadians(t *testing.T) {
	got := Default().Render.FOVRadians()
	if math.Abs(float64(got)-math.Pi/4) > 1e-6 {
		t.Errorf("expected pi/4, got %v", got)
	}
}

func TestControlsNames(t *testing.T) {
	names := Default().Controls.Names()
	if len(names) != len(camera.Keys()) {
		t.Fatalf("expected a name for every camera key, got %d", len(names))
	}
	if names[camera.KeyForward] != "W" {
		t.Errorf("expected forward 'W', got %s", names[camera.KeyForward])
	}
	if names[camera.KeyFast] != "Left Shift" {
		t.Errorf("expected fast 'Left Shift', got %s", names[camera.KeyFast])
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Demo.Name = "triangle"
	cfg.Render.ClearColour = "navy"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Demo.Name != "triangle" {
		t.Errorf("expected demo 'triangle', got %s", loaded.Demo.Name)
	}
	if loaded.Render.ClearColour != "navy" {
		t.Errorf("expected clear colour 'navy', got %s", loaded.Render.ClearColour)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "demo flag",
			setup: func() {
				*flagDemo = "triangle"
			},
			verify: func(cfg *Config) {
				if cfg.Demo.Name != "triangle" {
					t.Errorf("expected demo 'triangle', got %s", cfg.Demo.Name)
				}
			},
			teardown: func() {
				*flagDemo = ""
			},
		},
		{
			name: "shaders flag",
			setup: func() {
				*flagShaders = "/tmp/shaders"
			},
			verify: func(cfg *Config) {
				if cfg.Demo.ShaderDir != "/tmp/shaders" {
					t.Errorf("expected shader dir /tmp/shaders, got %s", cfg.Demo.ShaderDir)
				}
			},
			teardown: func() {
				*flagShaders = ""
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  near: 10\n  far: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for far < near, got nil")
	}
}
