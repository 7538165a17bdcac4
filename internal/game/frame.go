package game

import "github.com/tomz197/snake/internal/snake"

// Segment is a body cell with its display colour.
type Segment struct {
	snake.Position
	Color snake.Color
}

// Frame is the plain data a renderer needs to draw one tick.
type Frame struct {
	Arena     Arena
	Segments  []Segment // Head first
	Food      snake.Position
	Heading   snake.Heading
	State     State
	Collision Collision
	Score     int
	TickRate  int
}

// Frame snapshots the session for rendering.
func (s *Session) Frame() Frame {
	positions := s.snake.Segments()
	segs := make([]Segment, len(positions))
	for i, p := range positions {
		segs[i] = Segment{Position: p, Color: snake.SegmentColor(i)}
	}

	return Frame{
		Arena:     s.arena,
		Segments:  segs,
		Food:      s.food,
		Heading:   s.snake.Heading(),
		State:     s.state,
		Collision: s.collision,
		Score:     s.Score(),
		TickRate:  s.TickRate(),
	}
}

// Renderer draws frames. Terminal and desktop frontends implement it.
type Renderer interface {
	Render(f Frame) error
}
