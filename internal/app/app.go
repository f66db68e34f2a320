// Package app implements the main loop that runs one demo scene.
package app

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/Faultbox/hellogl/internal/config"
	"github.com/Faultbox/hellogl/internal/demo"
	"github.com/Faultbox/hellogl/internal/engine/debug"
	"github.com/Faultbox/hellogl/internal/engine/input"
	"github.com/Faultbox/hellogl/internal/engine/input/sdlinput"
	"github.com/Faultbox/hellogl/internal/engine/renderer"
	"github.com/Faultbox/hellogl/internal/engine/texture"
	"github.com/Faultbox/hellogl/internal/engine/window"
	"github.com/Faultbox/hellogl/internal/logger"
)

// Checker texture used when no texture file is configured.
const (
	checkerSize  = 256
	checkerCells = 8
)

// App owns the window, renderer and the state of the running scene.
type App struct {
	cfg     *config.Config
	scene   demo.Scene
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	poller   *sdlinput.Poller
	input    *input.State

	mesh  *renderer.Mesh
	frame demo.FrameState

	screenshots *debug.ScreenshotCapture
}

// New opens the window and uploads the configured scene.
func New(cfg *config.Config) (*App, error) {
	scene, err := demo.Lookup(cfg.Demo.Name)
	if err != nil {
		return nil, err
	}
	clearColour, err := cfg.Render.ClearRGBA()
	if err != nil {
		return nil, err
	}

	logger.Info("initializing demo",
		zap.String("demo", scene.Name),
		zap.String("description", scene.Description),
		zap.Stringer("camera", scene.Camera),
	)

	a := &App{
		cfg:         cfg,
		scene:       scene,
		screenshots: debug.NewScreenshotCapture(cfg.Demo.ScreenshotDir, scene.Name),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      fmt.Sprintf("%s - %s", cfg.Window.Title, scene.Name),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	bindings, err := sdlinput.Bindings(cfg.Controls.Names())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid controls: %w", err)
	}
	a.poller = sdlinput.New()
	a.input = input.NewState(bindings)

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		ClearColour: clearColour,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.frame = demo.NewFrameState(demo.SettingsFor(cfg, scene, a.window.Aspect()))

	if err := a.upload(); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("demo initialized successfully")
	return a, nil
}

func (a *App) upload() error {
	if a.scene.Empty() {
		return nil
	}

	src, err := a.scene.Shaders(a.cfg.Demo.ShaderDir)
	if err != nil {
		return fmt.Errorf("loading shaders: %w", err)
	}

	data := renderer.MeshData{
		Layout:         a.scene.Layout,
		Vertices:       a.scene.VertexData(),
		Indices:        a.scene.Indices,
		Points:         a.scene.Primitive == demo.Points,
		VertexShader:   src.Vertex,
		FragmentShader: src.Fragment,
	}
	if a.scene.Textured {
		data.Texture = a.loadTexture()
	}

	a.mesh, err = a.renderer.Upload(data)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", a.scene.Name, err)
	}
	return nil
}

func (a *App) loadTexture() *image.RGBA {
	if path := a.cfg.Demo.Texture; path != "" {
		img, err := texture.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err == nil {
			logger.Info("texture loaded", zap.String("path", path), zap.Stringer("size", img.Bounds().Size()))
			return img
		}
		logger.Warn("using checker texture", zap.String("path", path), zap.Error(err))
	}
	return texture.Checker(checkerSize, checkerCells, colornames.White, colornames.Dimgray)
}

// Run starts the main loop and returns when the window closes or ESC is
// pressed.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if a.poller.Update() {
			a.running = false
			break
		}
		a.input.Apply(a.poller.Events())

		if a.input.Pressed(input.ScancodeEscape) {
			a.running = false
			break
		}
		if _, _, ok := a.input.Resized(); ok {
			width, height := a.window.DrawableSize()
			a.renderer.Resize(width, height)
			a.frame = a.frame.Resize(width, height)
		}

		// 2. Advance the scene
		a.frame = demo.Step(a.frame, dt, a.input)

		// 3. Render
		a.render()

		if a.input.Pressed(input.ScancodeF12) {
			a.screenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			a.window.SetTitle(fmt.Sprintf("%s - %s (%d fps)", a.cfg.Window.Title, a.scene.Name, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render draws the current frame.
func (a *App) render() {
	a.renderer.Begin()
	if a.mesh == nil {
		return
	}
	a.renderer.Draw(a.mesh, renderer.Uniforms{
		Projection: a.frame.Projection,
		View:       a.frame.View,
		Model:      a.frame.Model,
	})
}

// screenshot saves the back buffer before it is swapped.
func (a *App) screenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	name, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", name))
}

// Close cleans up resources.
func (a *App) Close() {
	logger.Info("closing demo")

	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
