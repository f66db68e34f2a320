// Package demo holds the demo scene catalogue and the per-frame state the
// application loop advances.
package demo

import (
	"fmt"
	"sort"

	"github.com/Faultbox/hellogl/pkg/math"
	"github.com/Faultbox/hellogl/pkg/vertex"
)

// Primitive selects how vertices are assembled.
type Primitive int

const (
	Triangles Primitive = iota
	Points
)

// CameraMode selects how the camera pose is driven each frame.
type CameraMode int

const (
	CameraFixed CameraMode = iota
	CameraFree
	CameraOrbit
)

func (m CameraMode) String() string {
	switch m {
	case CameraFixed:
		return "fixed"
	case CameraFree:
		return "free"
	case CameraOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// Scene describes what one demo draws and how its camera behaves.
type Scene struct {
	Name        string
	Description string

	Primitive Primitive
	Layout    vertex.Layout
	Vertices  []vertex.Vertex
	Indices   []uint16

	VertexShader   string // file name within the shader directory
	FragmentShader string
	ShadersOnDisk  bool // read shaders from the configured directory

	Textured bool
	Camera   CameraMode
	Spin     bool
}

// Empty reports whether the scene only clears the screen.
func (s Scene) Empty() bool {
	return len(s.Vertices) == 0
}

// VertexData packs the scene vertices with its layout.
func (s Scene) VertexData() []float32 {
	return s.Layout.Pack(s.Vertices)
}

// Count returns the number of elements to draw.
func (s Scene) Count() int {
	if len(s.Indices) > 0 {
		return len(s.Indices)
	}
	return len(s.Vertices)
}

func colour(r, g, b float32) math.Vec4 {
	return math.Vec4{X: r, Y: g, Z: b, W: 1}
}

func point(x, y, z float32) math.Vec4 {
	return math.Vec4{X: x, Y: y, Z: z, W: 1}
}

// quad is the 5x5 textured square in the z = 0 plane, wound counter-clockwise
// when seen from +z.
func quad() ([]vertex.Vertex, []uint16) {
	return []vertex.Vertex{
		vertex.New(point(-2.5, -2.5, 0), colour(1, 0, 0), math.Vec2{X: 0, Y: 1}),
		vertex.New(point(-2.5, 2.5, 0), colour(0, 1, 0), math.Vec2{X: 0, Y: 0}),
		vertex.New(point(2.5, 2.5, 0), colour(0, 0, 1), math.Vec2{X: 1, Y: 0}),
		vertex.New(point(2.5, -2.5, 0), colour(1, 1, 1), math.Vec2{X: 1, Y: 1}),
	}, []uint16{0, 2, 1, 0, 3, 2}
}

func texturedQuad(name, desc string, mode CameraMode, spin bool) Scene {
	vertices, indices := quad()
	return Scene{
		Name:           name,
		Description:    desc,
		Primitive:      Triangles,
		Layout:         vertex.PosColUV,
		Vertices:       vertices,
		Indices:        indices,
		VertexShader:   "textured.vert",
		FragmentShader: "textured.frag",
		Textured:       true,
		Camera:         mode,
		Spin:           spin,
	}
}

var scenes = func() map[string]Scene {
	shaders := texturedQuad("shaders", "free camera with shaders read from disk", CameraFree, true)
	shaders.ShadersOnDisk = true

	list := []Scene{
		{
			Name:        "init",
			Description: "window and context only, clears the screen",
			Layout:      vertex.Pos,
		},
		{
			Name:        "point",
			Description: "a single point in clip space",
			Primitive:   Points,
			Layout:      vertex.PosCol,
			Vertices: []vertex.Vertex{
				vertex.New(point(0, 0, 0), colour(1, 1, 1), math.Vec2{}),
			},
			VertexShader:   "point.vert",
			FragmentShader: "point.frag",
		},
		{
			Name:        "triangle",
			Description: "one coloured triangle in clip space",
			Primitive:   Triangles,
			Layout:      vertex.PosCol,
			Vertices: []vertex.Vertex{
				vertex.New(point(-0.5, -0.75, 0), colour(1, 0, 0), math.Vec2{}),
				vertex.New(point(0.5, -0.75, 0), colour(0, 1, 0), math.Vec2{}),
				vertex.New(point(0, 0.25, 0), colour(0, 0, 1), math.Vec2{}),
			},
			Indices:        []uint16{0, 1, 2},
			VertexShader:   "colour.vert",
			FragmentShader: "colour.frag",
		},
		texturedQuad("maths", "textured quad through projection, view and model matrices", CameraFixed, false),
		texturedQuad("camera", "spinning quad with a free-movement camera", CameraFree, true),
		texturedQuad("orbit", "spinning quad with an orbiting camera", CameraOrbit, true),
		shaders,
	}

	m := make(map[string]Scene, len(list))
	for _, s := range list {
		m[s.Name] = s
	}
	return m
}()

// Lookup returns the scene with the given name.
func Lookup(name string) (Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("unknown demo %q (available: %v)", name, Names())
	}
	return s, nil
}

// Names lists the scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
