package libscn

import "github.com/go-gl/mathgl/mgl32"

// Overlaps reports whether the squares of side size anchored at a and b
// intersect. Squares that only share an edge do not overlap.
func Overlaps(a, b mgl32.Vec2, size float32) bool {
	return a[0] < b[0]+size &&
		a[0]+size > b[0] &&
		a[1] < b[1]+size &&
		a[1]+size > b[1]
}

// InBounds reports whether a square of side size at pos lies fully inside
// [0, bounds.X] x [0, bounds.Y].
func InBounds(pos mgl32.Vec2, size float32, bounds mgl32.Vec2) bool {
	return pos[0] >= 0 && pos[0]+size <= bounds[0] &&
		pos[1] >= 0 && pos[1]+size <= bounds[1]
}
