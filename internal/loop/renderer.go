package loop

import (
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/snake"
)

// TerminalRenderer draws game frames onto a half-block canvas. Game
// coordinates grow upward; the canvas grows downward, so Y is flipped.
type TerminalRenderer struct {
	canvas *draw.Canvas
	cw     *draw.ChunkWriter
}

// Compile-time check that TerminalRenderer implements game.Renderer.
var _ game.Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer writing through cw.
func NewTerminalRenderer(canvas *draw.Canvas, cw *draw.ChunkWriter) *TerminalRenderer {
	return &TerminalRenderer{canvas: canvas, cw: cw}
}

// Render draws the playfield, food and snake, then the control strip labels.
// Output stays buffered in the ChunkWriter until the caller flushes.
func (r *TerminalRenderer) Render(f game.Frame) error {
	c := r.canvas
	c.Clear()

	a := f.Arena
	height := float64(a.Height)
	strip := float64(a.ControlMargin)

	// Playfield outline above the control strip
	c.StrokeRect(0, 0, float64(a.Width), height-strip, draw.ColorGray)

	food := float64(a.FoodSize)
	c.FillRect(float64(f.Food.X), height-float64(f.Food.Y)-food, food, food, draw.ColorBlue)

	cell := float64(a.CellSize)
	// Tail first so the head is always on top
	for i := len(f.Segments) - 1; i >= 0; i-- {
		s := f.Segments[i]
		c.FillRect(float64(s.X), height-float64(s.Y)-cell, cell, cell, segmentColor(s.Color))
	}

	c.Render(r.cw)
	r.drawControls(f)
	return nil
}

// drawControls labels the direction buttons inside the control strip, the
// active one highlighted.
func (r *TerminalRenderer) drawControls(f game.Frame) {
	a := f.Arena
	if a.ControlMargin <= 0 {
		return
	}

	h := float64(a.Height)
	for _, b := range a.ControlButtons() {
		label := controlLabels[b.Heading]
		col, row := r.canvas.LogicalToTerminal(float64(b.Center.X), h-float64(b.Center.Y))
		col = max(col-len([]rune(label))/2, 1)

		color := draw.ColorGray
		if b.Heading == f.Heading {
			color = draw.ColorWhite
		}
		r.cw.WriteColored(col, row, color, label)
	}
}

var controlLabels = map[snake.Heading]string{
	snake.Up:    "▲ W",
	snake.Down:  "▼ S",
	snake.Left:  "◀ A",
	snake.Right: "D ▶",
}

// segmentColor maps the advisory snake colour onto the terminal palette.
func segmentColor(c snake.Color) draw.Color {
	if c == snake.Green {
		return draw.ColorGreen
	}
	return draw.ColorRed
}
