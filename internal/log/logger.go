package log

import (
	"io"
	"log/slog"
)

// Level returns the minimum level for the given verbosity: Debug when
// verbose, otherwise Warn.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger writing to w.
// Every record carries an "app" attribute naming the program.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}
	return slog.New(slog.NewTextHandler(w, opts)).With(slog.String("app", appName))
}

// NewJSONLogger creates a slog.Logger that writes JSON records to w.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With(slog.String("app", appName))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

const appName = "shopcatalog"
