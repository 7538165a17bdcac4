// Package physics provides overlap tests for square boxes on the game grid.
package physics

// Box is a square anchored at (X, Y) with side Size.
type Box struct {
	X, Y int
	Size int
}

// Touching reports whether two boxes overlap or share an edge.
// Edges count, so boxes that merely meet are touching.
func Touching(a, b Box) bool {
	return a.X+a.Size >= b.X && a.X <= b.X+b.Size &&
		a.Y+a.Size >= b.Y && a.Y <= b.Y+b.Size
}

// Overlapping reports whether two boxes share interior area.
// Boxes that only meet at an edge do not overlap.
func Overlapping(a, b Box) bool {
	return a.X+a.Size > b.X && a.X < b.X+b.Size &&
		a.Y+a.Size > b.Y && a.Y < b.Y+b.Size
}

// AnyOverlapping reports whether a overlaps any of the boxes.
func AnyOverlapping(a Box, boxes []Box) bool {
	for _, b := range boxes {
		if Overlapping(a, b) {
			return true
		}
	}
	return false
}
