package libscn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mover applies one frame of keyboard movement to a quad.
type Mover struct {
	Bounds mgl32.Vec2
	Size   float32
	Speed  float32
	// Reject a step that makes the quads overlap. Quads that already overlap
	// may still move apart.
	BlockOnCollision bool
	// Scale diagonal steps by 1/sqrt(2).
	NormalizeDiagonal bool
}

func NewMover(config Config) Mover {
	return Mover{
		Bounds:            mgl32.Vec2{float32(config.Window.Width), float32(config.Window.Height)},
		Size:              config.Quad.Size,
		Speed:             config.Quad.Speed,
		BlockOnCollision:  config.Movement.BlockOnCollision,
		NormalizeDiagonal: config.Movement.NormalizeDiagonal,
	}
}

// Resolve moves pos by one step for each held direction, in the order up,
// down, left, right. A step that pushes the quad past the window edge is
// undone, so pos either moves by the full step or not at all on that axis.
func (m Mover) Resolve(pos *mgl32.Vec2, other mgl32.Vec2, held Directions) {
	step := m.Speed
	if m.NormalizeDiagonal && held.Diagonal() {
		step /= math32.Sqrt2
	}

	if held.Up {
		m.try(pos, other, 1, -step)
	}
	if held.Down {
		m.try(pos, other, 1, step)
	}
	if held.Left {
		m.try(pos, other, 0, -step)
	}
	if held.Right {
		m.try(pos, other, 0, step)
	}
}

func (m Mover) try(pos *mgl32.Vec2, other mgl32.Vec2, axis int, delta float32) {
	prev := pos[axis]
	wasOverlapping := Overlaps(*pos, other, m.Size)
	pos[axis] += delta
	if !(pos[axis] >= 0 && pos[axis]+m.Size <= m.Bounds[axis]) {
		pos[axis] = prev
		return
	}
	if m.BlockOnCollision && !wasOverlapping && Overlaps(*pos, other, m.Size) {
		pos[axis] = prev
	}
}
