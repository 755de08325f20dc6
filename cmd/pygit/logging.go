package main

import (
	"log/slog"
	"os"
)

// newLogger builds the process-wide logger: a text handler on stderr, with
// its level taken from PYGIT_LOG (DEBUG, INFO, WARN, ERROR), defaulting to
// WARN so recoverable best-effort failures are visible without drowning
// ordinary command output.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if raw := os.Getenv("PYGIT_LOG"); raw != "" {
		_ = level.UnmarshalText([]byte(raw))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
