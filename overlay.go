package main

import (
	_ "embed"
	"fmt"

	"quad-collide/libgl"
	"quad-collide/libscn"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

//go:embed assets/shaders/overlay.vert
var Res_OverlayVshSrc string

//go:embed assets/shaders/overlay.frag
var Res_OverlayFshSrc string

// Overlay is a Dear ImGui panel that shows the live scene state.
type Overlay struct {
	Visible  bool
	toggle   libscn.Key
	movement libscn.MovementConfig

	context *imgui.Context
	io      imgui.IO
	win     *glfw.Window
	input   InputManager
	program *libgl.Program
	vao     *libgl.VertexArray
	vbo     *libgl.Buffer
	ebo     *libgl.Buffer
	atlas   uint32
}

func NewOverlay(win *glfw.Window, input InputManager, config libscn.Config) *Overlay {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	imgui.StyleColorsDark()

	program := libgl.LinkProgram(
		libgl.CompileShaderSource("overlay.vert", Res_OverlayVshSrc, gl.VERTEX_SHADER),
		libgl.CompileShaderSource("overlay.frag", Res_OverlayFshSrc, gl.FRAGMENT_SHADER),
	)

	vao := libgl.NewVertexArray()
	vao.Bind()
	vbo := libgl.NewBuffer(gl.ARRAY_BUFFER)
	vbo.Bind()
	ebo := libgl.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	ebo.Bind()
	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	vao.Layout(0, 2, gl.FLOAT, false, vertexSize, uintptr(vertexOffsetPos))
	vao.Layout(1, 2, gl.FLOAT, false, vertexSize, uintptr(vertexOffsetUv))
	vao.Layout(2, 4, gl.UNSIGNED_BYTE, true, vertexSize, uintptr(vertexOffsetCol))
	libgl.State.BindVertexArray(0)

	image := io.Fonts().TextureDataRGBA32()
	var atlas uint32
	gl.GenTextures(1, &atlas)
	libgl.State.ActiveTexture(0)
	libgl.State.BindTexture2D(atlas)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	io.Fonts().SetTextureID(imgui.TextureID(atlas))

	win.SetCursorPosCallback(func(w *glfw.Window, mx, my float64) {
		io.SetMousePosition(imgui.Vec2{X: float32(mx), Y: float32(my)})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		io.SetMouseButtonDown(int(button), action == glfw.Press)
	})
	win.SetScrollCallback(func(w *glfw.Window, x, y float64) {
		io.AddMouseWheelDelta(float32(x), float32(y))
	})

	return &Overlay{
		Visible:  config.Overlay.Visible,
		toggle:   config.Overlay.Toggle,
		movement: config.Movement,
		context:  context,
		io:       io,
		win:      win,
		input:    input,
		program:  program,
		vao:      vao,
		vbo:      vbo,
		ebo:      ebo,
		atlas:    atlas,
	}
}

func (o *Overlay) Draw(loop *libscn.Loop) {
	if o.input.IsKeyTap(o.toggle) {
		o.Visible = !o.Visible
	}
	if !o.Visible {
		return
	}

	dispWidth, dispHeight := o.win.GetSize()
	fbWidth, fbHeight := o.win.GetFramebufferSize()
	o.io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	dt := o.input.TimeDelta()
	if dt <= 0 {
		dt = 1. / 60.
	}
	o.io.SetDeltaTime(dt)

	imgui.NewFrame()
	o.build(loop, dt)
	imgui.Render()
	o.render(imgui.RenderedDrawData(), dispWidth, dispHeight, fbWidth, fbHeight)
}

func (o *Overlay) build(loop *libscn.Loop, dt float32) {
	scene := loop.Scene
	imgui.Begin("Quads")
	imgui.Text(fmt.Sprintf("Frame %d (%.2f ms)", loop.Frames(), dt*1000))
	imgui.Text(fmt.Sprintf("State: %v", loop.State()))
	imgui.Separator()
	for _, quad := range scene.Quads {
		c := quad.Controls
		imgui.Text(fmt.Sprintf("%v at (%.2f, %.2f)  [%v %v %v %v]", quad.Name, quad.Position[0], quad.Position[1], c.Up, c.Left, c.Down, c.Right))
	}
	imgui.Text(fmt.Sprintf("Colliding: %v", scene.Colliding()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Block on collision: %v", o.movement.BlockOnCollision))
	imgui.Text(fmt.Sprintf("Normalize diagonal: %v", o.movement.NormalizeDiagonal))
	imgui.Text(fmt.Sprintf("%v hides this panel", o.toggle))
	imgui.End()
}

func (o *Overlay) render(drawData imgui.DrawData, dispWidth, dispHeight, fbWidth, fbHeight int) {
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	libgl.State.SetEnabled(libgl.Blend, libgl.ScissorTest)
	libgl.State.BlendFunc(libgl.BlendSrcAlpha, libgl.BlendOneMinusSrcAlpha)
	libgl.State.Viewport(0, 0, fbWidth, fbHeight)
	libgl.State.ActiveTexture(0)

	o.program.Bind()
	o.program.SetUniform("u_proj_mat", mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0))
	o.program.SetUniform("u_texture", 0)
	o.vao.Bind()

	var indexType uint32
	indexSize := imgui.IndexBufferLayout()
	switch indexSize {
	case 1:
		indexType = gl.UNSIGNED_BYTE
	case 2:
		indexType = gl.UNSIGNED_SHORT
	case 4:
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		if vertexBufferSize > 0 {
			o.vbo.Allocate(vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)
		}
		indexBuffer, indexBufferSize := list.IndexBuffer()
		if indexBufferSize > 0 {
			o.ebo.Allocate(indexBufferSize, indexBuffer, gl.STREAM_DRAW)
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			libgl.State.BindTexture2D(uint32(cmd.TextureID()))
			clipRect := cmd.ClipRect()
			x, y := int(clipRect.X), fbHeight-int(clipRect.W)
			if y <= 0 {
				y = 0
			}
			libgl.State.Scissor(x, y, int(clipRect.Z-clipRect.X), int(clipRect.W-clipRect.Y))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}
}

func (o *Overlay) Delete() {
	o.program.Delete()
	o.vao.Delete()
	o.vbo.Delete()
	o.ebo.Delete()
	libgl.State.Forget(0, 0, 0, o.atlas)
	gl.DeleteTextures(1, &o.atlas)
	o.context.Destroy()
}
