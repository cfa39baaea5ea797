package renderer

import "fmt"

const floatSize = 4

// VertexAttribute places one float attribute inside a vertex. Components and
// Offset are counted in floats.
type VertexAttribute struct {
	Location   uint32
	Components int32
	Offset     int32
}

// VertexLayout describes interleaved float vertices of Stride floats each.
type VertexLayout struct {
	Stride     int32
	Attributes []VertexAttribute
}

// NewVertexLayout packs attributes of the given sizes back to back, assigning
// locations 0, 1, 2... in order.
func NewVertexLayout(components ...int32) VertexLayout {
	var l VertexLayout
	for i, n := range components {
		l.Attributes = append(l.Attributes, VertexAttribute{
			Location:   uint32(i),
			Components: n,
			Offset:     l.Stride,
		})
		l.Stride += n
	}
	return l
}

var (
	// LayoutPositionTexCoord is position (location 0) and UV (location 1).
	LayoutPositionTexCoord = NewVertexLayout(3, 2)

	// LayoutPositionColor is position (location 0) and RGB colour (location 1).
	LayoutPositionColor = NewVertexLayout(3, 3)

	// LayoutPositionOnly5 reads only the position out of stride-5 vertices,
	// for drawing textured geometry with an untextured shader.
	LayoutPositionOnly5 = VertexLayout{
		Stride:     5,
		Attributes: []VertexAttribute{{Location: 0, Components: 3}},
	}
)

func (l VertexLayout) validate() error {
	if l.Stride <= 0 {
		return fmt.Errorf("%w: stride %d", ErrInvalidGeometry, l.Stride)
	}
	if len(l.Attributes) == 0 {
		return fmt.Errorf("%w: layout has no attributes", ErrInvalidGeometry)
	}
	for _, a := range l.Attributes {
		if a.Components < 1 || a.Components > 4 {
			return fmt.Errorf("%w: attribute %d has %d components", ErrInvalidGeometry, a.Location, a.Components)
		}
		if a.Offset < 0 || a.Offset+a.Components > l.Stride {
			return fmt.Errorf("%w: attribute %d does not fit in stride %d", ErrInvalidGeometry, a.Location, l.Stride)
		}
	}
	return nil
}

// Model owns a vertex array with its vertex buffer and optional element
// buffer.
type Model struct {
	dev         Device
	vao, vbo    uint32
	ebo         uint32
	layout      VertexLayout
	vertexCount int32
	indexCount  int32
	released    bool
}

// NewModel uploads vertices (and indices, when non-empty) as static buffers
// and records layout in a new vertex array. Malformed input is rejected with
// an error wrapping ErrInvalidGeometry before anything is allocated.
func NewModel(dev Device, vertices []float32, indices []uint32, layout VertexLayout) (*Model, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: no vertices", ErrInvalidGeometry)
	}
	if len(vertices)%int(layout.Stride) != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a multiple of stride %d", ErrInvalidGeometry, len(vertices), layout.Stride)
	}
	vertexCount := int32(len(vertices) / int(layout.Stride))
	for i, idx := range indices {
		if idx >= uint32(vertexCount) {
			return nil, fmt.Errorf("%w: index %d refers to vertex %d of %d", ErrInvalidGeometry, i, idx, vertexCount)
		}
	}

	m := &Model{
		dev:         dev,
		layout:      layout,
		vertexCount: vertexCount,
		indexCount:  int32(len(indices)),
	}

	m.vao = dev.GenVertexArray()
	dev.BindVertexArray(m.vao)

	m.vbo = dev.GenBuffer()
	dev.BindBuffer(ArrayBuffer, m.vbo)
	dev.BufferFloats(ArrayBuffer, vertices)

	stride := layout.Stride * floatSize
	for _, a := range layout.Attributes {
		dev.VertexAttribPointer(a.Location, a.Components, stride, a.Offset*floatSize)
		dev.EnableVertexAttribArray(a.Location)
	}

	// the element buffer binding is recorded in the vertex array, so it stays
	// bound until the vertex array is unbound
	if len(indices) > 0 {
		m.ebo = dev.GenBuffer()
		dev.BindBuffer(ElementArrayBuffer, m.ebo)
		dev.BufferUints(ElementArrayBuffer, indices)
	}

	dev.BindVertexArray(0)
	dev.BindBuffer(ArrayBuffer, 0)
	return m, nil
}

func (m *Model) VAO() uint32 { return m.vao }
func (m *Model) Layout() VertexLayout { return m.layout }
func (m *Model) VertexCount() int32 { return m.vertexCount }
func (m *Model) IndexCount() int32 { return m.indexCount }
func (m *Model) HasIndices() bool { return m.indexCount > 0 }

// Release deletes the vertex array and its buffers. Calls after the first do
// nothing.
func (m *Model) Release() {
	if m.released {
		return
	}
	m.released = true
	m.dev.DeleteVertexArray(m.vao)
	m.dev.DeleteBuffer(m.vbo)
	if m.ebo != 0 {
		m.dev.DeleteBuffer(m.ebo)
	}
}
