package libgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

type Capability uint32

const (
	Blend       Capability = gl.BLEND
	ScissorTest Capability = gl.SCISSOR_TEST
	CullFace    Capability = gl.CULL_FACE
	DepthTest   Capability = gl.DEPTH_TEST
)

type BlendFactor uint32

const (
	BlendZero             BlendFactor = gl.ZERO
	BlendOne              BlendFactor = gl.ONE
	BlendSrcAlpha         BlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha BlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

// StateManager mirrors the GL state it changes and skips calls that would not
// change anything. Element buffer bindings belong to the vertex array and are
// not tracked.
type StateManager struct {
	Caps                 map[Capability]bool
	Program, VertexArray uint32
	ArrayBuffer          uint32
	Texture2D            uint32
	ActiveTextureUnit    int
	BlendFactorSrc       BlendFactor
	BlendFactorDst       BlendFactor
	ViewportRect         [4]int
	ScissorRect          [4]int
	ClearColorRGBA       [4]float32
}

var State *StateManager

func NewStateManager() *StateManager {
	return &StateManager{
		Caps:           map[Capability]bool{},
		BlendFactorSrc: BlendOne,
		BlendFactorDst: BlendZero,
	}
}

func (s *StateManager) Enable(cap Capability) {
	if s.Caps[cap] {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *StateManager) Disable(cap Capability) {
	if !s.Caps[cap] {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

// SetEnabled enables exactly caps and disables every other tracked capability.
func (s *StateManager) SetEnabled(caps ...Capability) {
	want := map[Capability]bool{}
	for _, c := range caps {
		want[c] = true
	}
	for c, on := range s.Caps {
		if on && !want[c] {
			s.Disable(c)
		}
	}
	for c := range want {
		s.Enable(c)
	}
}

func (s *StateManager) BlendFunc(src, dst BlendFactor) {
	if s.BlendFactorSrc == src && s.BlendFactorDst == dst {
		return
	}
	gl.BlendFunc(uint32(src), uint32(dst))
	s.BlendFactorSrc = src
	s.BlendFactorDst = dst
}

func (s *StateManager) UseProgram(program uint32) {
	if s.Program == program {
		return
	}
	gl.UseProgram(program)
	s.Program = program
}

func (s *StateManager) BindVertexArray(array uint32) {
	if s.VertexArray == array {
		return
	}
	gl.BindVertexArray(array)
	s.VertexArray = array
}

func (s *StateManager) BindArrayBuffer(buffer uint32) {
	if s.ArrayBuffer == buffer {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	s.ArrayBuffer = buffer
}

func (s *StateManager) ActiveTexture(unit int) {
	if s.ActiveTextureUnit == unit {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	s.ActiveTextureUnit = unit
}

func (s *StateManager) BindTexture2D(texture uint32) {
	if s.Texture2D == texture {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)
	s.Texture2D = texture
}

func (s *StateManager) Viewport(x, y, w, h int) {
	rect := [4]int{x, y, w, h}
	if s.ViewportRect == rect {
		return
	}
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	s.ViewportRect = rect
}

func (s *StateManager) Scissor(x, y, w, h int) {
	rect := [4]int{x, y, w, h}
	if s.ScissorRect == rect {
		return
	}
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
	s.ScissorRect = rect
}

func (s *StateManager) ClearColor(r, g, b, a float32) {
	rgba := [4]float32{r, g, b, a}
	if s.ClearColorRGBA == rgba {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = rgba
}

// Forget drops cached bindings that refer to deleted objects.
func (s *StateManager) Forget(program, array, buffer, texture uint32) {
	if program != 0 && s.Program == program {
		s.Program = 0
	}
	if array != 0 && s.VertexArray == array {
		s.VertexArray = 0
	}
	if buffer != 0 && s.ArrayBuffer == buffer {
		s.ArrayBuffer = 0
	}
	if texture != 0 && s.Texture2D == texture {
		s.Texture2D = 0
	}
}
