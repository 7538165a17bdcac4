// Package game runs one snake session: collision checks, food pickup,
// scoring and the tick rate the caller should drive it at.
package game

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/tomz197/snake/internal/physics"
	"github.com/tomz197/snake/internal/snake"
)

// BaseTickRate is the starting number of ticks per second.
const BaseTickRate = 3

// State is the session phase.
type State int

const (
	Running  State = iota // Snake is moving
	GameOver              // Terminal; the session no longer advances
)

// String returns a short name for logs.
func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// Collision identifies what ended a game.
type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

// String returns a short name for logs and screens.
func (c Collision) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Rand is the random source used for food placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Event describes what happened during a single tick.
type Event struct {
	Moved     bool           // Snake advanced this tick
	Ate       bool           // Head reached the food
	Grown     snake.Position // Position of the new segment when Ate
	Color     snake.Color    // Colour of the new segment when Ate
	Over      bool           // Session entered GameOver this tick
	Collision Collision      // Cause when Over
}

// Session owns a snake and its food for one game.
type Session struct {
	arena        Arena
	snake        *snake.Snake
	food         snake.Position
	state        State
	collision    Collision
	tickRateStep int
	baseTickRate int
	ticks        int
	rng          Rand
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source for food placement.
func WithRand(r Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithSeed seeds the default random source, making food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBaseTickRate overrides the starting tick rate.
func WithBaseTickRate(rate int) Option {
	return func(s *Session) {
		if rate > 0 {
			s.baseTickRate = rate
		}
	}
}

// NewSession creates a running session with the snake at the arena centre
// and food at a random spot.
func NewSession(arena Arena, opts ...Option) (*Session, error) {
	if err := arena.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		arena:        arena,
		snake:        snake.New(arena.Start(), arena.CellSize),
		baseTickRate: BaseTickRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	s.moveFood()
	return s, nil
}

// Tick runs one simulation step. Collisions are checked against the current
// head before moving, so the game can end one step short of the wall.
func (s *Session) Tick() Event {
	if s.state == GameOver {
		return Event{}
	}
	s.ticks++

	hitSelf := s.HitSelf()
	hitWall := s.HitWall()
	if hitSelf || hitWall {
		s.state = GameOver
		s.collision = WallCollision
		if hitSelf {
			s.collision = SelfCollision
		}
		return Event{Over: true, Collision: s.collision}
	}

	s.snake.Advance()
	ev := Event{Moved: true}

	if s.HitFood() {
		ev.Ate = true
		ev.Grown, ev.Color = s.snake.Grow()
		s.moveFood()
		s.tickRateStep++
	}
	return ev
}

// HitFood reports whether the head cell touches the food square.
func (s *Session) HitFood() bool {
	head := s.snake.Head()
	return physics.Touching(
		physics.Box{X: head.X, Y: head.Y, Size: s.arena.CellSize},
		physics.Box{X: s.food.X, Y: s.food.Y, Size: s.arena.FoodSize},
	)
}

// HitWall reports whether the next step along the heading would leave the arena.
func (s *Session) HitWall() bool {
	return s.arena.wallAhead(s.snake.Head(), s.snake.Heading())
}

// HitSelf reports whether the head overlaps any other segment.
func (s *Session) HitSelf() bool {
	segs := s.snake.Segments()
	if len(segs) <= 1 {
		return false
	}

	cell := s.arena.CellSize
	head := physics.Box{X: segs[0].X, Y: segs[0].Y, Size: cell}
	body := make([]physics.Box, 0, len(segs)-1)
	for _, p := range segs[1:] {
		body = append(body, physics.Box{X: p.X, Y: p.Y, Size: cell})
	}
	return physics.AnyOverlapping(head, body)
}

// moveFood relocates the food to a fresh random position.
func (s *Session) moveFood() {
	s.food = s.arena.randomFood(s.rng)
}

// ChangeHeading sets the snake heading for the next tick.
func (s *Session) ChangeHeading(h snake.Heading) {
	s.snake.ChangeHeading(h)
}

// Steer changes the snake heading by name. Unknown names are ignored.
func (s *Session) Steer(name string) bool {
	return s.snake.Steer(name)
}

// State returns the session phase.
func (s *Session) State() State {
	return s.state
}

// Running reports whether the session still advances.
func (s *Session) Running() bool {
	return s.state == Running
}

// LastCollision returns what ended the game, or NoCollision while running.
func (s *Session) LastCollision() Collision {
	return s.collision
}

// Score is the number of segments.
func (s *Session) Score() int {
	return s.snake.Len()
}

// TickRateStep returns how many times food has been eaten.
func (s *Session) TickRateStep() int {
	return s.tickRateStep
}

// TickRate returns the desired ticks per second.
func (s *Session) TickRate() int {
	return s.baseTickRate + s.tickRateStep
}

// TickInterval returns the time between ticks at the current rate.
func (s *Session) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate())
}

// Ticks returns how many ticks have run while the session was live.
func (s *Session) Ticks() int {
	return s.ticks
}

// Food returns the food position.
func (s *Session) Food() snake.Position {
	return s.food
}

// Snake returns the snake. Callers should not mutate it outside Steer.
func (s *Session) Snake() *snake.Snake {
	return s.snake
}

// Arena returns the playfield description.
func (s *Session) Arena() Arena {
	return s.arena
}
