package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh is a vertex array with interleaved float attributes and optional indices
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	ebo         *BufferObject
	mode        uint32
	vertexCount int32
	indexCount  int32
	stride      int
}

// NewMesh uploads vertices laid out as consecutive float attributes of the
// given sizes, bound to locations 0, 1, ... in order. indices may be nil, in
// which case the vertices are drawn in order. mode is the primitive type,
// e.g. gl.TRIANGLES or gl.LINES.
func NewMesh(vertices []float32, indices []uint32, attribSizes []int32, mode uint32, usage BufferUsage) *Mesh {
	stride := 0
	for _, size := range attribSizes {
		stride += int(size)
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, usage)

	var ebo *BufferObject
	if indices != nil {
		ebo = NewEBO(indices, StaticDraw)
	}

	offset := 0
	for i, size := range attribSizes {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, int32(stride*4), offset*4)
		offset += int(size)
	}

	vao.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		ebo:         ebo,
		mode:        mode,
		vertexCount: int32(len(vertices) / stride),
		indexCount:  int32(len(indices)),
		stride:      stride,
	}
}

// UpdateVertices overwrites the vertex data in place. The layout and count must not grow.
func (m *Mesh) UpdateVertices(vertices []float32) {
	if len(vertices) == 0 || len(vertices) > m.vbo.Size/4 {
		return
	}
	m.vbo.UpdateSubData(0, len(vertices)*4, gl.Ptr(vertices))
}

// Draw renders the mesh with whatever shader is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.ebo != nil {
		gl.DrawElements(m.mode, m.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(m.mode, 0, m.vertexCount)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	if m.ebo != nil {
		m.ebo.Delete()
	}
}
