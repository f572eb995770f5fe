package libgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh is an indexed triangle mesh with a single tightly packed vec3
// position attribute at location 0.
type Mesh struct {
	vao          *VertexArray
	vbo          *Buffer
	ebo          *Buffer
	elementCount int32
}

func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVertexArray()
	vao.Bind()

	vbo := NewBuffer(gl.ARRAY_BUFFER)
	vbo.Allocate(SizeOf(vertices), Pointer(vertices), gl.STATIC_DRAW)
	vao.Layout(0, 3, gl.FLOAT, false, 3*4, 0)

	ebo := NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	ebo.Allocate(SizeOf(indices), Pointer(indices), gl.STATIC_DRAW)

	State.BindVertexArray(0)
	State.BindArrayBuffer(0)

	return &Mesh{
		vao:          vao,
		vbo:          vbo,
		ebo:          ebo,
		elementCount: int32(len(indices)),
	}
}

func (m *Mesh) Bind() {
	m.vao.Bind()
}

// Draw issues the indexed draw. The mesh must be bound.
func (m *Mesh) Draw() {
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.elementCount, gl.UNSIGNED_INT, 0)
}

func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
