// Package logging builds the structured logger shared by the binaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tomz197/snake/internal/config"
)

// Config selects where logs go and how verbose they are.
type Config struct {
	Level  string    // debug, info, warn, error; empty means info
	File   string    // Rotating log file; empty disables it
	Prefix string    // Shown before every line
	Stderr bool      // Also write to Output
	Output io.Writer // Defaults to os.Stderr
}

// FromEnv reads SNAKE_LOG_LEVEL and SNAKE_LOG_FILE.
func FromEnv(prefix string) Config {
	return Config{
		Level:  config.GetEnv("SNAKE_LOG_LEVEL", "info"),
		File:   config.GetEnv("SNAKE_LOG_FILE", ""),
		Prefix: prefix,
		Stderr: true,
	}
}

// New returns a logger for cfg and a close func for the log file.
// Unknown levels fall back to info.
func New(cfg Config) (*log.Logger, func() error) {
	var writers []io.Writer
	closeFn := func() error { return nil }

	if cfg.Stderr {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, out)
	}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		writers = append(writers, lj)
		closeFn = lj.Close
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          cfg.Prefix,
		Level:           level,
	})
	return logger, closeFn
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
