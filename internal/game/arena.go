package game

import (
	"errors"
	"fmt"

	"github.com/tomz197/snake/internal/snake"
)

// Default arena, in touch-screen units.
const (
	DefaultCellSize      = 30   // Side of one snake segment
	DefaultFoodSize      = 40   // Side of the food square
	DefaultControlMargin = 400  // Reserved strip at the bottom for direction controls
	DefaultWidth         = 1200 // Arena width
	DefaultHeight        = 1200 // Arena height, including the control strip
)

var (
	// ErrInvalidCellSize is returned when cell or food size is not positive.
	ErrInvalidCellSize = errors.New("cell and food size must be positive")
	// ErrArenaTooSmall is returned when there is no room left to place food.
	ErrArenaTooSmall = errors.New("arena too small")
)

// Arena describes the playfield. The strip between Y=0 and Y=ControlMargin
// is reserved for controls and never holds food.
type Arena struct {
	Width         int
	Height        int
	ControlMargin int
	CellSize      int
	FoodSize      int
}

// DefaultArena returns the standard playfield.
func DefaultArena() Arena {
	return Arena{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		ControlMargin: DefaultControlMargin,
		CellSize:      DefaultCellSize,
		FoodSize:      DefaultFoodSize,
	}
}

// Validate checks that the arena leaves a non-empty range for food.
func (a Arena) Validate() error {
	if a.CellSize <= 0 || a.FoodSize <= 0 {
		return ErrInvalidCellSize
	}
	if a.ControlMargin < 0 {
		return fmt.Errorf("%w: negative control margin %d", ErrArenaTooSmall, a.ControlMargin)
	}
	if a.Width-2*a.FoodSize <= 0 {
		return fmt.Errorf("%w: width %d leaves no room for food of size %d", ErrArenaTooSmall, a.Width, a.FoodSize)
	}
	if a.Height-a.ControlMargin-2*a.FoodSize <= 0 {
		return fmt.Errorf("%w: height %d with margin %d leaves no room for food of size %d",
			ErrArenaTooSmall, a.Height, a.ControlMargin, a.FoodSize)
	}
	return nil
}

// Start returns the spawn position of the snake head.
func (a Arena) Start() snake.Position {
	return snake.Position{X: a.Width / 2, Y: a.Height / 2}
}

// randomFood picks a uniformly random food position inside the playable area.
func (a Arena) randomFood(rng Rand) snake.Position {
	minX := a.FoodSize
	minY := a.ControlMargin + a.FoodSize
	return snake.Position{
		X: minX + rng.Intn(a.Width-a.FoodSize-minX),
		Y: minY + rng.Intn(a.Height-a.FoodSize-minY),
	}
}

// wallAhead reports whether one more step along h from head would cross the
// wall on that axis. Only the boundary facing the heading is tested.
func (a Arena) wallAhead(head snake.Position, h snake.Heading) bool {
	cell := a.CellSize
	switch h {
	case snake.Up:
		return head.Y+cell > a.Height-cell
	case snake.Down:
		return head.Y-cell < a.ControlMargin+cell
	case snake.Left:
		return head.X-cell < cell
	case snake.Right:
		return head.X+cell > a.Width-cell
	default:
		return false
	}
}
