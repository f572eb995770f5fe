package libgl

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type Buffer struct {
	glId   uint32
	target uint32
	size   int
}

func NewBuffer(target uint32) *Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return &Buffer{
		glId:   id,
		target: target,
	}
}

func (b *Buffer) Id() uint32 {
	return b.glId
}

func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) Bind() {
	if b.target == gl.ARRAY_BUFFER {
		State.BindArrayBuffer(b.glId)
		return
	}
	gl.BindBuffer(b.target, b.glId)
}

// Allocate binds the buffer and replaces its storage with data.
// Element buffers must be allocated while their vertex array is bound.
func (b *Buffer) Allocate(size int, data unsafe.Pointer, usage uint32) {
	if size == 0 {
		log.Printf("Zero size buffer allocation for buffer %d\n", b.glId)
		return
	}
	b.Bind()
	gl.BufferData(b.target, size, data, usage)
	b.size = size
}

func (b *Buffer) Delete() {
	if b.glId == 0 {
		return
	}
	if b.target == gl.ARRAY_BUFFER {
		State.Forget(0, 0, b.glId, 0)
	}
	gl.DeleteBuffers(1, &b.glId)
	b.glId = 0
}

type VertexArray struct {
	glId uint32
}

func NewVertexArray() *VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArray{glId: id}
}

func (vao *VertexArray) Id() uint32 {
	return vao.glId
}

func (vao *VertexArray) Bind() {
	State.BindVertexArray(vao.glId)
}

// Layout describes attribute index in the currently bound array buffer.
// The vertex array must be bound.
func (vao *VertexArray) Layout(index int, size int, dataType uint32, normalized bool, stride int, offset uintptr) {
	gl.EnableVertexAttribArray(uint32(index))
	gl.VertexAttribPointerWithOffset(uint32(index), int32(size), dataType, normalized, int32(stride), offset)
}

func (vao *VertexArray) Delete() {
	if vao.glId == 0 {
		return
	}
	State.Forget(0, vao.glId, 0, 0)
	gl.DeleteVertexArrays(1, &vao.glId)
	vao.glId = 0
}
