package demo

import "github.com/Faultbox/hellogl/internal/config"

// SettingsFor derives the frame settings for a scene from the configuration.
func SettingsFor(cfg *config.Config, scene Scene, aspect float32) Settings {
	return Settings{
		FOV:     cfg.Render.FOVRadians(),
		Aspect:  aspect,
		Near:    cfg.Render.Near,
		Far:     cfg.Render.Far,
		Eye:     cfg.Camera.EyePoint(),
		Target:  cfg.Camera.TargetPoint(),
		WorldUp: cfg.Camera.Up(),
		Speed:   cfg.Camera.Speed,
		Mode:    scene.Camera,
		Spin:    scene.Spin,
	}
}
