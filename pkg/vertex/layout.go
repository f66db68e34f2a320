package vertex

// Layout describes the interleaved order of attributes in a packed buffer.
// The renderer derives attribute strides and byte offsets from it, so any
// change to the attribute order must come with a new Version.
type Layout struct {
	Name       string
	Version    int
	Attributes []Attribute
}

var (
	// PosColUV is position(4) + colour(4) + uv(2): 40 bytes, offsets 0/16/32.
	PosColUV = Layout{Name: "pos-col-uv", Version: 1, Attributes: []Attribute{AttrPosition, AttrColour, AttrUV}}

	// PosCol is position(4) + colour(4): 32 bytes, offsets 0/16.
	PosCol = Layout{Name: "pos-col", Version: 1, Attributes: []Attribute{AttrPosition, AttrColour}}

	// Pos is position(4) only: 16 bytes.
	Pos = Layout{Name: "pos", Version: 1, Attributes: []Attribute{AttrPosition}}
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	n := 0
	for _, a := range l.Attributes {
		n += a.Components()
	}
	return n
}

// StrideBytes returns the size of one packed vertex in bytes.
func (l Layout) StrideBytes() int {
	return l.Stride() * FloatSize
}

// Offset returns the byte offset of attr within a vertex, or false if the
// layout does not carry it.
func (l Layout) Offset(attr Attribute) (int, bool) {
	off := 0
	for _, a := range l.Attributes {
		if a == attr {
			return off, true
		}
		off += a.Components() * FloatSize
	}
	return 0, false
}

// Has reports whether the layout carries attr.
func (l Layout) Has(attr Attribute) bool {
	_, ok := l.Offset(attr)
	return ok
}

// Pack flattens vertices in order, each one contributing its attributes in
// layout order.
func (l Layout) Pack(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*l.Stride())
	for _, v := range vertices {
		for _, a := range l.Attributes {
			out = a.append(out, v)
		}
	}
	return out
}

// Pack flattens vertices with the PosColUV layout.
func Pack(vertices []Vertex) []float32 {
	return PosColUV.Pack(vertices)
}
