package libscn

import "github.com/go-gl/mathgl/mgl32"

// Renderer draws the shared quad mesh with the shared program.
type Renderer interface {
	Clear()
	// Begin binds the program and the mesh for this frame's draws.
	Begin()
	// DrawQuad uploads the transform and collision flag, then issues the draw.
	DrawQuad(mvp mgl32.Mat4, colliding bool)
}

type Scene struct {
	Quads      [2]*Quad
	Size       float32
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Mover      Mover
}

func NewScene(config Config) *Scene {
	w, h := float32(config.Window.Width), float32(config.Window.Height)
	scene := &Scene{
		Size:       config.Quad.Size,
		Projection: mgl32.Ortho(0, w, h, 0, -1, 1),
		View:       mgl32.Ident4(),
		Mover:      NewMover(config),
	}
	for i, player := range config.Players {
		scene.Quads[i] = &Quad{
			Name:     player.Name,
			Position: mgl32.Vec2(player.Start),
			Controls: player.Controls,
		}
	}
	return scene
}

func (s *Scene) Colliding() bool {
	return Overlaps(s.Quads[0].Position, s.Quads[1].Position, s.Size)
}

func (s *Scene) ModelViewProjection(pos mgl32.Vec2) mgl32.Mat4 {
	model := mgl32.Translate3D(pos[0], pos[1], 0)
	return s.Projection.Mul4(s.View).Mul4(model)
}

// Step moves and draws each quad in turn. The collision flag for a quad is
// taken after that quad has moved, so the second quad sees both moves.
func (s *Scene) Step(keys KeyState, r Renderer) {
	for i, quad := range s.Quads {
		other := s.Quads[1-i]
		s.Mover.Resolve(&quad.Position, other.Position, quad.Controls.Held(keys))
		r.DrawQuad(s.ModelViewProjection(quad.Position), s.Colliding())
	}
}
