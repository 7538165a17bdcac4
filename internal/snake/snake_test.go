package snake

import (
	"reflect"
	"testing"
)

func TestAdvanceSingleSegment(t *testing.T) {
	s := New(Position{X: 0, Y: 0}, 30)
	s.Advance()

	if got := s.Head(); got != (Position{X: 0, Y: 30}) {
		t.Fatalf("head after advance = %v, want (0,30)", got)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestAdvanceDirections(t *testing.T) {
	tests := []struct {
		heading Heading
		want    Position
	}{
		{Up, Position{X: 100, Y: 130}},
		{Down, Position{X: 100, Y: 70}},
		{Left, Position{X: 70, Y: 100}},
		{Right, Position{X: 130, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			s := New(Position{X: 100, Y: 100}, 30)
			s.ChangeHeading(tt.heading)
			s.Advance()
			if got := s.Head(); got != tt.want {
				t.Errorf("head = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceFollowsLeader(t *testing.T) {
	s := New(Position{X: 0, Y: 0}, 10)
	s.Grow()
	s.Grow()
	// body: (0,0) (0,-10) (0,-20)

	s.ChangeHeading(Right)
	before := s.Segments()
	s.Advance()
	after := s.Segments()

	if after[0] != (Position{X: 10, Y: 0}) {
		t.Errorf("head = %v, want (10,0)", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d = %v, want %v", i, after[i], before[i-1])
		}
	}
}

func TestAdvancePreservesLength(t *testing.T) {
	s := New(Position{X: 300, Y: 300}, 30)
	for i := 0; i < 4; i++ {
		s.Grow()
	}

	headings := []Heading{Up, Up, Left, Left, Down, Right, Right, Up}
	for _, h := range headings {
		s.ChangeHeading(h)
		s.Advance()
		if s.Len() != 5 {
			t.Fatalf("len = %d after advancing %v, want 5", s.Len(), h)
		}
	}
}

func TestGrow(t *testing.T) {
	s := New(Position{X: 0, Y: 0}, 30)

	pos, color := s.Grow()
	if pos != (Position{X: 0, Y: -30}) {
		t.Errorf("grown segment = %v, want (0,-30)", pos)
	}
	if color != Green {
		t.Errorf("second segment colour = %v, want green", color)
	}

	_, color = s.Grow()
	if color != Red {
		t.Errorf("third segment colour = %v, want red", color)
	}
}

func TestGrowKeepsExistingSegments(t *testing.T) {
	s := New(Position{X: 90, Y: 90}, 30)
	s.ChangeHeading(Left)
	s.Grow()
	s.Advance()

	before := s.Segments()
	pos, _ := s.Grow()
	after := s.Segments()

	if len(after) != len(before)+1 {
		t.Fatalf("len = %d, want %d", len(after), len(before)+1)
	}
	if !reflect.DeepEqual(after[:len(before)], before) {
		t.Errorf("existing segments changed: %v -> %v", before, after[:len(before)])
	}
	want := before[len(before)-1].Add(Position{X: 30})
	if pos != want {
		t.Errorf("grown segment = %v, want %v", pos, want)
	}
}

func TestChangeHeading(t *testing.T) {
	s := New(Position{}, 30)

	s.ChangeHeading(Down)
	if s.Heading() != Down {
		t.Errorf("reversal not applied: heading = %v", s.Heading())
	}

	s.ChangeHeading(Heading(42))
	if s.Heading() != Down {
		t.Errorf("invalid heading changed state: %v", s.Heading())
	}

	s.ChangeHeading(Left)
	once := *s
	s.ChangeHeading(Left)
	if !reflect.DeepEqual(once, *s) {
		t.Errorf("repeated heading change is not idempotent")
	}
}

func TestSteer(t *testing.T) {
	s := New(Position{}, 30)

	if !s.Steer("right") || s.Heading() != Right {
		t.Errorf("steer right: heading = %v", s.Heading())
	}
	for _, name := range []string{"", "UP", "north", "left "} {
		if s.Steer(name) {
			t.Errorf("steer %q accepted", name)
		}
		if s.Heading() != Right {
			t.Errorf("steer %q changed heading to %v", name, s.Heading())
		}
	}
}

func TestParseHeading(t *testing.T) {
	for _, h := range []Heading{Up, Down, Left, Right} {
		got, ok := ParseHeading(h.String())
		if !ok || got != h {
			t.Errorf("ParseHeading(%q) = %v, %v", h.String(), got, ok)
		}
	}
	if _, ok := ParseHeading("diagonal"); ok {
		t.Errorf("ParseHeading accepted an unknown name")
	}
}

func TestOpposite(t *testing.T) {
	for _, h := range []Heading{Up, Down, Left, Right} {
		if h.Opposite().Opposite() != h {
			t.Errorf("%v opposite twice = %v", h, h.Opposite().Opposite())
		}
		if h.Unit().Add(h.Opposite().Unit()) != (Position{}) {
			t.Errorf("%v and its opposite do not cancel", h)
		}
	}
}

func TestSegmentsIsCopy(t *testing.T) {
	s := New(Position{X: 5, Y: 5}, 30)
	segs := s.Segments()
	segs[0] = Position{X: 99, Y: 99}
	if s.Head() != (Position{X: 5, Y: 5}) {
		t.Errorf("mutating Segments() result changed the snake")
	}
}
