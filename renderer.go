package main

import (
	"quad-collide/libgl"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// quadRenderer draws every quad with one program and one mesh. GL errors are
// never queried.
type quadRenderer struct {
	program    *libgl.Program
	mesh       *libgl.Mesh
	viewport   [2]int
	clearColor [4]float32
}

func (r *quadRenderer) Clear() {
	// the overlay leaves blending and scissoring on, and scissoring also limits Clear
	libgl.State.SetEnabled()
	libgl.State.Viewport(0, 0, r.viewport[0], r.viewport[1])
	c := r.clearColor
	libgl.State.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *quadRenderer) Begin() {
	r.program.Bind()
	r.mesh.Bind()
}

func (r *quadRenderer) DrawQuad(mvp mgl32.Mat4, colliding bool) {
	r.program.SetUniform("u_mvp", mvp)
	r.program.SetUniform("u_colliding", colliding)
	r.mesh.Draw()
}
