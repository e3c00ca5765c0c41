// Package obslog builds the optional structured logger fincore's
// generators accept for diagnostic output (engine.Params.Logger). It is
// a convenience constructor, not a requirement: any *slog.Logger works.
package obslog

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects the level and output format of a logger built by New.
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
}

// New builds a structured slog.Logger from cfg. Unlike a process-wide
// logging setup, New never touches slog.SetDefault: fincore is a leaf
// library with no business mutating global state as a side effect of
// constructing a value its caller asked for.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
