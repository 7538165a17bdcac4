package main

import (
	"flag"
	"os"

	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/desktop"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/logging"
)

func main() {
	seed := flag.Uint64("seed", config.GetEnvUint64("SNAKE_SEED", 0), "Food placement seed (0 = random)")
	width := flag.Int("width", game.DefaultWidth, "Arena width in game units")
	height := flag.Int("height", game.DefaultHeight, "Arena height in game units, including the control strip")
	windowSize := flag.Int("window", 800, "Initial window height in pixels")
	flag.Parse()

	logger, closeLog := logging.New(logging.FromEnv("snake"))
	defer closeLog()

	arena := game.DefaultArena()
	arena.Width = *width
	arena.Height = *height

	winH := int32(*windowSize)
	winW := winH * int32(arena.Width) / int32(max(arena.Height, 1))

	err := desktop.Run(desktop.Options{
		Width:  winW,
		Height: winH,
		Arena:  arena,
		Seed:   *seed,
		Logger: logger,
	})
	if err != nil {
		logger.Error("desktop game failed", "err", err)
		closeLog()
		os.Exit(1)
	}
}
