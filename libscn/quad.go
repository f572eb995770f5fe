package libscn

import "github.com/go-gl/mathgl/mgl32"

type Quad struct {
	Name string
	// top-left corner in window pixels
	Position mgl32.Vec2
	Controls Controls
}

type Controls struct {
	Up    Key `yaml:"up"`
	Down  Key `yaml:"down"`
	Left  Key `yaml:"left"`
	Right Key `yaml:"right"`
}

func (c Controls) Keys() []Key {
	return []Key{c.Up, c.Down, c.Left, c.Right}
}

// Held samples which of the four directions are pressed right now.
func (c Controls) Held(keys KeyState) Directions {
	return Directions{
		Up:    keys.IsKeyDown(c.Up),
		Down:  keys.IsKeyDown(c.Down),
		Left:  keys.IsKeyDown(c.Left),
		Right: keys.IsKeyDown(c.Right),
	}
}

type Directions struct {
	Up, Down, Left, Right bool
}

func (d Directions) Diagonal() bool {
	return (d.Up || d.Down) && (d.Left || d.Right)
}

// QuadGeometry returns a square with its top-left corner at the origin as
// four positions (x, y, z) and two triangles.
func QuadGeometry(size float32) (vertices []float32, indices []uint32) {
	vertices = []float32{
		0, 0, 0, // top left
		size, 0, 0, // top right
		0, size, 0, // bottom left
		size, size, 0, // bottom right
	}
	indices = []uint32{
		0, 1, 3,
		0, 2, 3,
	}
	return
}
