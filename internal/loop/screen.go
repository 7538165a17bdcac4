package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	if c.state.Session != nil && c.state.GameState != GameStateShutdown && !c.state.isInactive {
		if err := c.renderer.Render(c.state.Session.Frame()); err != nil {
			return err
		}
	} else {
		c.canvas.Clear()
		c.canvas.Render(c.chunkWriter)
	}

	c.canvas.RenderBorder(c.chunkWriter)
	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawUI draws the overlay for the current state.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth)
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStateGameOver:
		c.drawGameOverScreen(centerX, centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "INACTIVITY WARNING")

	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	cw.WriteCentered(centerX, centerY, fmt.Sprintf("Disconnecting in %d seconds.", max(remaining, 0)))
	cw.WriteCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// figlet "small" font
	titleArt := []string{
		`  ___ _  _   _   _  _____ `,
		` / __| \| | /_\ | |/ / __|`,
		` \__ \ .' |/ _ \| ' <| _| `,
		` |___/_|\_/_/ \_\_|\_\___|`,
	}

	cw := c.chunkWriter
	titleStartY := max(centerY-8, 1)
	for i, line := range titleArt {
		cw.WriteColored(centerX-len(line)/2, titleStartY+i, draw.ColorGreen, line)
	}

	controlsY := titleStartY + len(titleArt) + 2
	cw.WriteCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"W A S D / arrows .  Steer",
		"SPACE . . . . . . . Start",
		"Q . . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteCentered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	promptY := controlsY + len(controlLines) + 2
	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, promptY, ">>  Press SPACE to Start  <<")
	} else {
		cw.WriteCentered(centerX, promptY, "                            ")
	}

	c.drawTopScores(centerX, promptY+2)
}

// drawPlayingHUD draws score and speed along the top edge.
// Fields are fixed-width so shrinking values leave no residue.
func (c *Client) drawPlayingHUD(termWidth int) {
	s := c.state.Session
	cw := c.chunkWriter
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-6d", s.Score()))

	speed := fmt.Sprintf("Speed: %3d/s", s.TickRate())
	cw.WriteAt(termWidth-len(speed), 1, speed)

	if c.server != nil {
		players := fmt.Sprintf("Players: %-4d", c.server.Players())
		cw.WriteCentered(termWidth/2, 1, players)
	}
}

// drawGameOverScreen shows the final score, what ended the game and the
// restart prompt.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	s := c.state.Session
	cw := c.chunkWriter
	titleY := max(centerY-6, 1)

	cw.WriteColored(centerX-len("Game Over")/2, titleY, draw.ColorRed, "Game Over")
	cw.WriteCentered(centerX, titleY+2, fmt.Sprintf("Score: %d", s.Score()))
	cw.WriteCentered(centerX, titleY+3, collisionMessage(s.LastCollision()))
	if c.state.Games > 1 {
		cw.WriteCentered(centerX, titleY+4, fmt.Sprintf("Best this session: %d", c.state.BestScore))
	}

	promptY := titleY + 6
	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, promptY, ">>  Press SPACE to Restart  <<")
	} else {
		cw.WriteCentered(centerX, promptY, "                              ")
	}
	cw.WriteCentered(centerX, promptY+1, "ESC for title")

	c.drawTopScores(centerX, promptY+3)
}

// drawTopScores draws the hub leaderboard when there is one.
func (c *Client) drawTopScores(centerX, startY int) {
	if c.server == nil {
		return
	}
	scores := c.server.TopScores()
	if len(scores) == 0 {
		return
	}

	cw := c.chunkWriter
	cw.WriteCentered(centerX, startY, "Top Scores")
	for i, e := range scores {
		line := fmt.Sprintf("%d. %-*s %4d", i+1, config.MaxUsernameLength, e.Username, e.Score)
		cw.WriteCentered(centerX, startY+1+i, line)
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	cw.WriteCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	cw.WriteCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	cw.WriteCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	cw.WriteCentered(centerX, centerY+4, "Press Q to disconnect now")
}

func collisionMessage(c game.Collision) string {
	switch c {
	case game.WallCollision:
		return "You hit the wall"
	case game.SelfCollision:
		return "You ran into yourself"
	default:
		return ""
	}
}
