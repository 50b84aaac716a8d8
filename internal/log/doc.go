// Package log builds the slog loggers used by shopcatalog.
//
// Log output goes to stderr so it never mixes with a report written to
// stdout. Verbose mode lowers the level from Warn to Debug.
package log
