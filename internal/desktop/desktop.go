// Package desktop plays the game in a raylib window: keyboard and mouse
// input, a scaled renderer and the same title / game over flow as the
// terminal client.
package desktop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/snake"
)

const (
	borderPadding = 10
	targetFPS     = 60
)

// Options configures the window.
type Options struct {
	Width, Height int32 // Initial window size in pixels
	Arena         game.Arena
	Seed          uint64
	Logger        *log.Logger
}

// Renderer draws frames with raylib. Call it between BeginDrawing and
// EndDrawing.
type Renderer struct {
	scale   float32
	offsetX float32
	offsetY float32
	height  float32 // Arena height, for flipping Y
}

// Compile-time check that Renderer implements game.Renderer.
var _ game.Renderer = (*Renderer)(nil)

// fit scales the arena to the window keeping its aspect ratio.
func (r *Renderer) fit(a game.Arena) {
	sw := float32(rl.GetScreenWidth()) - borderPadding*2
	sh := float32(rl.GetScreenHeight()) - borderPadding*2
	r.scale = min(sw/float32(a.Width), sh/float32(a.Height))
	r.offsetX = borderPadding + (sw-float32(a.Width)*r.scale)/2
	r.offsetY = borderPadding + (sh-float32(a.Height)*r.scale)/2
	r.height = float32(a.Height)
}

// toScreen converts the lower-left corner of a game box to the top-left
// corner of a screen rectangle.
func (r *Renderer) toScreen(x, y, size int) (sx, sy, ss int32) {
	fx := r.offsetX + float32(x)*r.scale
	fy := r.offsetY + (r.height-float32(y+size))*r.scale
	return int32(fx), int32(fy), int32(float32(size)*r.scale + 0.5)
}

// toGame converts a screen point to game coordinates.
func (r *Renderer) toGame(v rl.Vector2) snake.Position {
	return snake.Position{
		X: int((v.X - r.offsetX) / r.scale),
		Y: int(r.height - (v.Y-r.offsetY)/r.scale),
	}
}

// Render draws the playfield, control buttons, food and snake.
func (r *Renderer) Render(f game.Frame) error {
	a := f.Arena
	r.fit(a)

	// Playfield and control strip
	px, py, _ := r.toScreen(0, a.ControlMargin, 0)
	pw := int32(float32(a.Width) * r.scale)
	ph := int32(float32(a.Height-a.ControlMargin) * r.scale)
	rl.DrawRectangleLines(px, py-ph, pw, ph, rl.DarkGray)

	for _, b := range a.ControlButtons() {
		size := a.ControlMargin / 4
		bx, by, bs := r.toScreen(b.Center.X-size/2, b.Center.Y-size/2, size)
		color := rl.DarkGray
		if b.Heading == f.Heading {
			color = rl.Gray
		}
		rl.DrawRectangle(bx, by, bs, bs, color)
		label := b.Heading.String()
		fontSize := bs / 4
		rl.DrawText(label, bx+(bs-rl.MeasureText(label, fontSize))/2, by+(bs-fontSize)/2, fontSize, rl.White)
	}

	fx, fy, fs := r.toScreen(f.Food.X, f.Food.Y, a.FoodSize)
	rl.DrawRectangle(fx, fy, fs, fs, rl.Blue)

	for i := len(f.Segments) - 1; i >= 0; i-- {
		s := f.Segments[i]
		sx, sy, ss := r.toScreen(s.X, s.Y, a.CellSize)
		color := rl.Red
		if s.Color == snake.Green {
			color = rl.Green
		}
		rl.DrawRectangle(sx, sy, ss, ss, color)
	}

	hud := fmt.Sprintf("Score: %d   Speed: %d/s", f.Score, f.TickRate)
	rl.DrawText(hud, int32(r.offsetX)+8, int32(r.offsetY)+8, 20, rl.White)
	return nil
}

// keyDirections maps steering keys to direction names.
var keyDirections = []struct {
	key  int32
	name string
}{
	{rl.KeyUp, "up"}, {rl.KeyW, "up"},
	{rl.KeyDown, "down"}, {rl.KeyS, "down"},
	{rl.KeyLeft, "left"}, {rl.KeyA, "left"},
	{rl.KeyRight, "right"}, {rl.KeyD, "right"},
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(opts Options) error {
	arena := opts.Arena
	if arena == (game.Arena{}) {
		arena = game.DefaultArena()
	}
	if err := arena.Validate(); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rl.InitWindow(opts.Width, opts.Height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	var (
		r        Renderer
		session  *game.Session
		games    int
		lastTick time.Time
	)

	start := func() error {
		var gopts []game.Option
		if opts.Seed != 0 {
			gopts = append(gopts, game.WithSeed(opts.Seed+uint64(games)))
		}
		s, err := game.NewSession(arena, gopts...)
		if err != nil {
			return err
		}
		session = s
		games++
		lastTick = time.Now()
		logger.Info("game started", "game", games)
		return nil
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		confirm := rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter)
		if (session == nil || !session.Running()) && confirm {
			if err := start(); err != nil {
				return err
			}
		}

		if session != nil && session.Running() {
			for _, kd := range keyDirections {
				if rl.IsKeyPressed(kd.key) {
					session.Steer(kd.name)
				}
			}
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && r.scale > 0 {
				if name, ok := arena.ControlAt(r.toGame(rl.GetMousePosition())); ok {
					session.Steer(name)
				}
			}

			if time.Since(lastTick) >= session.TickInterval() {
				lastTick = time.Now()
				if ev := session.Tick(); ev.Over {
					logger.Info("game over", "score", session.Score(), "collision", ev.Collision)
				}
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if session != nil {
			if err := r.Render(session.Frame()); err != nil {
				rl.EndDrawing()
				return err
			}
		}
		drawOverlay(session)
		rl.EndDrawing()
	}
	return nil
}

// drawOverlay shows the title or game over text.
func drawOverlay(s *game.Session) {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2

	centered := func(text string, y, size int32, color rl.Color) {
		rl.DrawText(text, cx-rl.MeasureText(text, size)/2, y, size, color)
	}

	switch {
	case s == nil:
		centered("SNAKE", cy-80, 60, rl.Green)
		centered("Arrows / WASD or click the buttons to steer", cy, 20, rl.White)
		centered("Press SPACE to Start", cy+40, 20, rl.White)
	case !s.Running():
		centered("Game Over", cy-60, 50, rl.Red)
		centered(fmt.Sprintf("Score: %d", s.Score()), cy, 30, rl.White)
		centered("Press SPACE to Restart", cy+50, 20, rl.White)
	}
}
