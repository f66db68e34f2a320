package vertex

import (
	"testing"

	"github.com/Faultbox/hellogl/pkg/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() []Vertex {
	return []Vertex{
		New(math.Vec4{X: -2.5, Y: -2.5, W: 1}, math.Vec4{X: 1, W: 1}, math.Vec2{X: 0, Y: 1}),
		New(math.Vec4{X: -2.5, Y: 2.5, W: 1}, math.Vec4{Y: 1, W: 1}, math.Vec2{X: 0, Y: 0}),
		New(math.Vec4{X: 2.5, Y: 2.5, W: 1}, math.Vec4{Z: 1, W: 1}, math.Vec2{X: 1, Y: 0}),
		New(math.Vec4{X: 2.5, Y: -2.5, W: 1}, math.Vec4{X: 1, Y: 1, Z: 1, W: 1}, math.Vec2{X: 1, Y: 1}),
	}
}

func TestPackLength(t *testing.T) {
	for k := 0; k <= 4; k++ {
		assert.Len(t, Pack(quad()[:k]), 10*k)
	}
}

func TestPackFieldOrder(t *testing.T) {
	v := New(math.Vec4{X: 1, Y: 2, Z: 3, W: 4}, math.Vec4{X: 5, Y: 6, Z: 7, W: 8}, math.Vec2{X: 9, Y: 10})
	w := New(math.Vec4{X: 11, Y: 12, Z: 13, W: 14}, math.Vec4{X: 15, Y: 16, Z: 17, W: 18}, math.Vec2{X: 19, Y: 20})

	got := Pack([]Vertex{v, w})
	want := []float32{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	}
	assert.Equal(t, want, got)
}

func TestPackEmpty(t *testing.T) {
	got := Pack(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLayoutOffsets(t *testing.T) {
	tests := []struct {
		layout      Layout
		stride      int
		strideBytes int
		offsets     map[Attribute]int
		missing     []Attribute
	}{
		{PosColUV, 10, 40, map[Attribute]int{AttrPosition: 0, AttrColour: 16, AttrUV: 32}, nil},
		{PosCol, 8, 32, map[Attribute]int{AttrPosition: 0, AttrColour: 16}, []Attribute{AttrUV}},
		{Pos, 4, 16, map[Attribute]int{AttrPosition: 0}, []Attribute{AttrColour, AttrUV}},
	}

	for _, tt := range tests {
		t.Run(tt.layout.Name, func(t *testing.T) {
			assert.Equal(t, tt.stride, tt.layout.Stride())
			assert.Equal(t, tt.strideBytes, tt.layout.StrideBytes())
			for attr, want := range tt.offsets {
				got, ok := tt.layout.Offset(attr)
				require.True(t, ok, attr.Name())
				assert.Equal(t, want, got, attr.Name())
			}
			for _, attr := range tt.missing {
				assert.False(t, tt.layout.Has(attr), attr.Name())
			}
		})
	}
}

func TestPackOmittedFields(t *testing.T) {
	vs := quad()[:3]
	got := PosCol.Pack(vs)
	require.Len(t, got, 8*3)
	assert.Equal(t, []float32{-2.5, -2.5, 0, 1, 1, 0, 0, 1}, got[:8])

	pos := Pos.Pack(vs)
	assert.Equal(t, []float32{-2.5, -2.5, 0, 1, -2.5, 2.5, 0, 1, 2.5, 2.5, 0, 1}, pos)
}

func TestAttributeNames(t *testing.T) {
	assert.Equal(t, "position", AttrPosition.Name())
	assert.Equal(t, "colour", AttrColour.Name())
	assert.Equal(t, "texCoord", AttrUV.Name())
	assert.Equal(t, 0, Attribute(99).Components())
}
