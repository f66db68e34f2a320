// Package vertex packs structured vertices into the interleaved float buffers
// uploaded to the GPU.
package vertex

import "github.com/Faultbox/hellogl/pkg/math"

// FloatSize is the size in bytes of one packed component.
const FloatSize = 4

// Vertex owns its position, colour and texture coordinates by value.
type Vertex struct {
	Position math.Vec4
	Colour   math.Vec4
	UV       math.Vec2
}

// New returns a vertex with all three fields set.
func New(position, colour math.Vec4, uv math.Vec2) Vertex {
	return Vertex{Position: position, Colour: colour, UV: uv}
}

// Attribute is one field of a vertex as seen by the shader.
type Attribute int

const (
	AttrPosition Attribute = iota
	AttrColour
	AttrUV
)

// Components returns how many floats the attribute occupies.
func (a Attribute) Components() int {
	switch a {
	case AttrPosition, AttrColour:
		return 4
	case AttrUV:
		return 2
	default:
		return 0
	}
}

// Name returns the shader input name bound to the attribute.
func (a Attribute) Name() string {
	switch a {
	case AttrPosition:
		return "position"
	case AttrColour:
		return "colour"
	case AttrUV:
		return "texCoord"
	default:
		return ""
	}
}

func (a Attribute) append(dst []float32, v Vertex) []float32 {
	switch a {
	case AttrPosition:
		return append(dst, v.Position.X, v.Position.Y, v.Position.Z, v.Position.W)
	case AttrColour:
		return append(dst, v.Colour.X, v.Colour.Y, v.Colour.Z, v.Colour.W)
	case AttrUV:
		return append(dst, v.UV.X, v.UV.Y)
	default:
		return dst
	}
}
