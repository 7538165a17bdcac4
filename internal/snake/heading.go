package snake

// Heading is a cardinal movement direction.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

var headingNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// ParseHeading maps "up", "down", "left" or "right" to a Heading.
func ParseHeading(name string) (Heading, bool) {
	for h, n := range headingNames {
		if n == name {
			return Heading(h), true
		}
	}
	return Up, false
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	return h >= Up && h <= Right
}

// String returns the lowercase name of the heading.
func (h Heading) String() string {
	if !h.Valid() {
		return "invalid"
	}
	return headingNames[h]
}

// Unit returns the one-cell displacement vector for the heading.
func (h Heading) Unit() Position {
	switch h {
	case Up:
		return Position{X: 0, Y: 1}
	case Down:
		return Position{X: 0, Y: -1}
	case Left:
		return Position{X: -1, Y: 0}
	case Right:
		return Position{X: 1, Y: 0}
	default:
		return Position{}
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return h
	}
}
