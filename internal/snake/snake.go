// Package snake holds the snake body model: segment positions and heading.
package snake

// Position is a grid coordinate. Y grows upward.
type Position struct {
	X, Y int
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both axes multiplied by k.
func (p Position) Scale(k int) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Color is the display colour of a segment. Renderers may ignore it.
type Color int

const (
	Red Color = iota
	Green
)

// String returns the colour name.
func (c Color) String() string {
	if c == Green {
		return "green"
	}
	return "red"
}

// SegmentColor returns the colour of the segment at index i.
// The head is red; a segment appended when the body count becomes even is green.
func SegmentColor(i int) Color {
	if (i+1)%2 == 0 {
		return Green
	}
	return Red
}

// Snake is an ordered list of segments, head first, moving in a heading.
type Snake struct {
	segments []Position
	heading  Heading
	cellSize int
}

// New creates a one-segment snake at start, heading up.
func New(start Position, cellSize int) *Snake {
	return &Snake{
		segments: []Position{start},
		heading:  Up,
		cellSize: cellSize,
	}
}

// Head returns the position of the first segment.
func (s *Snake) Head() Position {
	return s.segments[0]
}

// Segments returns a copy of all segment positions, head first.
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Heading returns the current movement direction.
func (s *Snake) Heading() Heading {
	return s.heading
}

// CellSize returns the grid cell size the snake moves by.
func (s *Snake) CellSize() int {
	return s.cellSize
}

// ChangeHeading sets the heading. Reversing into the body is allowed.
// Values outside the four cardinal headings are ignored.
func (s *Snake) ChangeHeading(h Heading) {
	if !h.Valid() {
		return
	}
	s.heading = h
}

// Steer changes heading by symbolic name ("up", "down", "left", "right").
// Returns false and leaves the heading alone for any other name.
func (s *Snake) Steer(name string) bool {
	h, ok := ParseHeading(name)
	if !ok {
		return false
	}
	s.ChangeHeading(h)
	return true
}

// Advance moves the head one cell along the heading and drags every
// following segment into the spot its predecessor held. No bounds checks.
func (s *Snake) Advance() {
	next := s.segments[0].Add(s.heading.Unit().Scale(s.cellSize))
	if len(s.segments) > 1 {
		copy(s.segments[1:], s.segments[:len(s.segments)-1])
	}
	s.segments[0] = next
}

// Grow appends a segment one cell behind the current tail, opposite the
// heading, and returns where it was placed along with its colour.
func (s *Snake) Grow() (Position, Color) {
	tail := s.segments[len(s.segments)-1]
	pos := tail.Add(s.heading.Opposite().Unit().Scale(s.cellSize))
	s.segments = append(s.segments, pos)
	return pos, SegmentColor(len(s.segments) - 1)
}
