// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hellogl/internal/engine/shader"
	"github.com/Faultbox/hellogl/internal/logger"
	"github.com/Faultbox/hellogl/pkg/math"
	"github.com/Faultbox/hellogl/pkg/vertex"
)

// Uniform names shared by every matrix-driven shader.
const (
	UniformProjection = "projectionMatrix"
	UniformView       = "viewMatrix"
	UniformModel      = "modelMatrix"
	UniformDiffuse    = "diffuse"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	ClearColour color.RGBA
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
}

// MeshData is everything Upload needs to build a drawable mesh.
type MeshData struct {
	Layout   vertex.Layout
	Vertices []float32 // packed with Layout
	Indices  []uint16  // optional
	Points   bool

	VertexShader   string
	FragmentShader string

	Texture *image.RGBA // optional, bound to the "diffuse" sampler
}

// Mesh is an uploaded vertex array with its program and texture.
type Mesh struct {
	vao, vbo, ibo uint32
	texture       uint32
	program       *shader.Program

	mode    uint32
	count   int32
	indexed bool
}

// Uniforms are the per-draw matrices.
type Uniforms struct {
	Projection math.Mat4
	View       math.Mat4
	Model      math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	r.SetClearColour(cfg.ClearColour)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// SetClearColour sets the colour Begin clears to.
func (r *Renderer) SetClearColour(c color.RGBA) {
	r.config.ClearColour = c
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Upload compiles the mesh shaders and creates its vertex array, buffers and
// texture. Attribute pointers follow the layout: each attribute the shader
// declares gets the layout's stride and byte offset.
func (r *Renderer) Upload(d MeshData) (*Mesh, error) {
	stride := d.Layout.Stride()
	if stride == 0 || len(d.Vertices) == 0 || len(d.Vertices)%stride != 0 {
		return nil, errors.New("vertex data does not match layout")
	}

	prog, err := shader.New(d.VertexShader, d.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling shaders: %w", err)
	}

	m := &Mesh{
		program: prog,
		mode:    gl.TRIANGLES,
		count:   int32(len(d.Vertices) / stride),
	}
	if d.Points {
		m.mode = gl.POINTS
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*vertex.FloatSize, gl.Ptr(d.Vertices), gl.STATIC_DRAW)

	if len(d.Indices) > 0 {
		gl.GenBuffers(1, &m.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*2, gl.Ptr(d.Indices), gl.STATIC_DRAW)
		m.indexed = true
		m.count = int32(len(d.Indices))
	}

	strideBytes := int32(d.Layout.StrideBytes())
	for _, attr := range d.Layout.Attributes {
		loc := prog.Attrib(attr.Name())
		if loc < 0 {
			logger.Debug("attribute not used by shader", zap.String("attribute", attr.Name()))
			continue
		}
		offset, _ := d.Layout.Offset(attr)
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), int32(attr.Components()), gl.FLOAT, false, strideBytes, gl.PtrOffset(offset))
	}

	// Unbind the VAO first so it keeps its element buffer binding.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if d.Texture != nil {
		m.texture = uploadTexture(d.Texture)
	}

	logger.Debug("mesh uploaded",
		zap.String("layout", d.Layout.Name),
		zap.Uint32("vao", m.vao),
		zap.Int32("count", m.count),
		zap.Bool("textured", m.texture != 0),
	)
	return m, nil
}

// uploadTexture creates a mipmapped, repeating RGBA texture.
func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	size := img.Bounds().Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Draw renders a mesh with the given matrices.
func (r *Renderer) Draw(m *Mesh, u Uniforms) {
	m.program.Use()
	m.program.SetMat4(UniformProjection, u.Projection)
	m.program.SetMat4(UniformView, u.View)
	m.program.SetMat4(UniformModel, u.Model)

	if m.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.texture)
		m.program.SetInt(UniformDiffuse, 0)
	}

	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_SHORT, nil)
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the mesh GPU resources.
func (m *Mesh) Delete() {
	if m.texture != 0 {
		gl.DeleteTextures(1, &m.texture)
	}
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	m.program.Delete()
}
