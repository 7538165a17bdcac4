package loop

import (
	"time"

	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateGameOver                  // Snake crashed, show score and restart prompt
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-player state.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	Session       *game.Session // Current game; nil on the title screen
	Games         int           // Games started on this connection
	BestScore     int
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	clock         tickClock
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	isInactive    bool    // Whether the client is in inactive warning state

	// Previous-frame values used to detect transitions that require a full
	// terminal clear.
	prevGameState GameState
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}

// tickClock turns frame deltas into game ticks at the session's rate.
type tickClock struct {
	acc time.Duration
}

// advance adds delta and returns how many ticks are due. At most two
// frames' worth of ticks (and at least one) run at once: a stalled frame
// does not trigger a burst of moves, yet rates above the frame rate still
// get every tick.
func (c *tickClock) advance(delta, interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	c.acc += delta
	n := int(c.acc / interval)
	c.acc -= time.Duration(n) * interval
	return min(n, max(int(2*config.ClientTargetFrameTime/interval), 1))
}

// reset starts a fresh interval.
func (c *tickClock) reset() {
	c.acc = 0
}
