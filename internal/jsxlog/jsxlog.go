// Package jsxlog provides the structured logger shared by the CLI and the
// compile pipeline.
package jsxlog

import (
	"io"
	"log/slog"
	"os"
)

// New builds a text-handler logger writing to w. verbose raises the level
// to Debug; otherwise only Info and above are emitted.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Default builds a logger writing to stderr.
func Default(verbose bool) *slog.Logger {
	return New(os.Stderr, verbose)
}
