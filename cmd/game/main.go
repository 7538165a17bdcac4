package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/logging"
	"github.com/tomz197/snake/internal/loop"
	"github.com/tomz197/snake/internal/loop/server"
)

func main() {
	seed := flag.Uint64("seed", config.GetEnvUint64("SNAKE_SEED", 0), "Food placement seed (0 = random)")
	width := flag.Int("width", game.DefaultWidth, "Arena width in game units")
	height := flag.Int("height", game.DefaultHeight, "Arena height in game units, including the control strip")
	flag.Parse()

	arena := game.DefaultArena()
	arena.Width = *width
	arena.Height = *height
	if err := arena.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid arena: %v\n", err)
		os.Exit(2)
	}

	// The terminal is the game screen, so logs only go to SNAKE_LOG_FILE.
	logCfg := logging.FromEnv("snake")
	logCfg.Stderr = false
	logger, closeLog := logging.New(logCfg)
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Local leaderboard for this run
	hub := server.NewHub(0, logger)

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Username: config.GetEnv("USER", "player"),
		Server:   hub,
		Arena:    arena,
		Seed:     *seed,
		Logger:   logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
