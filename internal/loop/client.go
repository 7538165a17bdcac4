// Package loop runs a snake game in a terminal: input, ticking and drawing.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/loop/server"
	"github.com/tomz197/snake/internal/metrics"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer // May be nil for local play
	handle       *server.ClientHandle
	state        *ClientState
	arena        game.Arena
	seed         uint64
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	renderer     *TerminalRenderer
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Server       server.GameServer // Optional leaderboard and shutdown source
	Arena        game.Arena        // Zero value means game.DefaultArena()
	Seed         uint64            // Non-zero makes food placement reproducible
	Logger       *log.Logger
}

// NewClient creates a new client. It registers with opts.Server when set.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	arena := opts.Arena
	if arena == (game.Arena{}) {
		arena = game.DefaultArena()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var handle *server.ClientHandle
	if opts.Server != nil {
		handle = opts.Server.RegisterClient(opts.Username)
		logger = logger.With("client", handle.ID)
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, arena)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(arena.Width), float64(arena.Height))
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		server:       opts.Server,
		handle:       handle,
		state:        NewClientState(),
		arena:        arena,
		seed:         opts.Seed,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		renderer:     NewTerminalRenderer(canvas, chunkWriter),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
}

// Run creates a client for r and w and plays until it exits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewClient(r, w, opts).Run()
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or the server shuts the client down.
func (c *Client) Run() error {
	draw.EnterScreen(c.writer)
	defer draw.LeaveScreen(c.writer)
	if c.handle != nil {
		defer c.server.UnregisterClient(c.handle.ID)
	}

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateGameOver:
			c.updateGameOverState()
		case GameStateShutdown:
			c.updateShutdownState()
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	return nil
}

// processInput reads pending keys. Direction changes apply immediately;
// the last one before a tick wins.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	in := c.state.Input

	if len(in.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if in.Quit || in.Closed {
		c.state.Running = false
	}

	if c.state.GameState == GameStatePlaying && in.Direction != "" {
		c.state.Session.Steer(in.Direction)
	}
}

// processServerEvents handles events from the hub. EventsCh is never
// closed, so there is no closed-channel case to handle.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event := <-c.handle.EventsCh:
			switch event.Type {
			case server.EventServerShutdown:
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			case server.EventNewHighScore:
				// Leaderboard is re-read every frame
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize. On actual size changes the terminal
// is cleared to remove residual pixels outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, c.arena)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// fitTermSize picks the largest render area that keeps the arena's aspect
// ratio with square sub-pixels (one column is as wide as half a row), clamps
// it to the max render resolution and centres it.
func fitTermSize(termWidth, termHeight int, arena game.Arena) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	maxWidth := min(termWidth, config.MaxTermWidth)
	maxHeight := min(termHeight, config.MaxTermHeight)
	aspect := float64(arena.Width) / float64(arena.Height)

	renderWidth = maxWidth
	renderHeight = int(float64(renderWidth) / aspect / 2)
	if renderHeight > maxHeight {
		renderHeight = maxHeight
		renderWidth = int(float64(renderHeight) * 2 * aspect)
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.state.Input.Confirm() {
		c.startGame()
	}
}

// updatePlayingState runs every tick the clock says is due this frame.
func (c *Client) updatePlayingState() {
	s := c.state.Session
	ticks := c.state.clock.advance(c.state.delta, s.TickInterval())

	for i := 0; i < ticks; i++ {
		ev := s.Tick()
		if ev.Ate {
			metrics.FoodEaten()
			c.logger.Debug("food eaten", "score", s.Score(), "rate", s.TickRate())
		}
		if ev.Over {
			c.endGame(ev.Collision)
			return
		}
	}
}

// updateGameOverState waits for a restart. Escape goes back to the title.
func (c *Client) updateGameOverState() {
	switch {
	case c.state.Input.Confirm():
		c.startGame()
	case c.state.Input.Escape:
		c.state.Session = nil
		c.state.GameState = GameStateStart
	}
}

// startGame starts or restarts the game.
func (c *Client) startGame() {
	input.Reset(c.inputStream)

	opts := []game.Option{}
	if c.seed != 0 {
		opts = append(opts, game.WithSeed(c.seed+uint64(c.state.Games)))
	}
	s, err := game.NewSession(c.arena, opts...)
	if err != nil {
		// The arena was fixed at startup; nothing to play.
		c.logger.Error("cannot start game", "err", err)
		c.state.Running = false
		return
	}

	c.state.Session = s
	c.state.Games++
	c.state.clock.reset()
	c.state.GameState = GameStatePlaying

	metrics.GameStarted()
	c.logger.Info("game started", "game", c.state.Games, "food", s.Food())
}

// endGame records the finished game.
func (c *Client) endGame(collision game.Collision) {
	score := c.state.Session.Score()
	c.state.BestScore = max(c.state.BestScore, score)
	c.state.GameState = GameStateGameOver

	if c.handle != nil {
		c.server.ReportScore(c.handle.ID, score)
	}
	metrics.GameOver(collision.String(), score)
	c.logger.Info("game over", "score", score, "collision", collision, "ticks", c.state.Session.Ticks())
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
