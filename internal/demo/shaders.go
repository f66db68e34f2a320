package demo

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hellogl/internal/logger"
)

//go:embed shaders/*.vert shaders/*.frag
var embedded embed.FS

// EmbeddedShaders returns the built-in shader files.
func EmbeddedShaders() fs.FS {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}

// ShaderSources holds the GLSL text of one program.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// LoadShaderSources reads a vertex and fragment shader pair from fsys.
func LoadShaderSources(fsys fs.FS, vert, frag string) (ShaderSources, error) {
	v, err := fs.ReadFile(fsys, vert)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("reading vertex shader: %w", err)
	}
	f, err := fs.ReadFile(fsys, frag)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("reading fragment shader: %w", err)
	}
	return ShaderSources{Vertex: string(v), Fragment: string(f)}, nil
}

// Shaders returns the scene's shader sources. Scenes with ShadersOnDisk read
// from dir when it is set and fall back to the embedded copies on error.
func (s Scene) Shaders(dir string) (ShaderSources, error) {
	if s.Empty() {
		return ShaderSources{}, nil
	}
	if s.ShadersOnDisk && dir != "" {
		src, err := LoadShaderSources(os.DirFS(dir), s.VertexShader, s.FragmentShader)
		if err == nil {
			logger.Info("loaded shaders from disk", zap.String("dir", dir))
			return src, nil
		}
		logger.Warn("falling back to embedded shaders", zap.String("dir", dir), zap.Error(err))
	}
	return LoadShaderSources(EmbeddedShaders(), s.VertexShader, s.FragmentShader)
}
