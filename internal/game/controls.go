package game

import (
	"math"

	"github.com/tomz197/snake/internal/snake"
)

// ControlButton is one direction button in the control strip.
type ControlButton struct {
	Heading snake.Heading
	Center  snake.Position
}

// ControlButtons lays out the four direction buttons inside the control
// strip: up above down in the middle, left and right at the sides.
func (a Arena) ControlButtons() []ControlButton {
	m := a.ControlMargin
	return []ControlButton{
		{snake.Up, snake.Position{X: a.Width / 2, Y: m * 4 / 5}},
		{snake.Down, snake.Position{X: a.Width / 2, Y: m / 5}},
		{snake.Left, snake.Position{X: a.Width / 5, Y: m / 2}},
		{snake.Right, snake.Position{X: a.Width * 4 / 5, Y: m / 2}},
	}
}

// ControlAt maps a point in the control strip to the nearest button's
// direction name, for pointer and touch input. Points outside the strip
// return false.
func (a Arena) ControlAt(p snake.Position) (string, bool) {
	if a.ControlMargin <= 0 || p.Y < 0 || p.Y >= a.ControlMargin || p.X < 0 || p.X >= a.Width {
		return "", false
	}

	best := ""
	bestDist := math.MaxFloat64
	for _, b := range a.ControlButtons() {
		dx := float64(p.X - b.Center.X)
		dy := float64(p.Y - b.Center.Y)
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = b.Heading.String()
		}
	}
	return best, true
}
