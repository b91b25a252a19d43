package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger receives the structured run log. It writes text at info level to
// stderr until Setup is called.
var Logger = newLogger(os.Stderr, false, slog.LevelInfo)

func newLogger(w io.Writer, jsonOutput bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup applies the --verbose and --json flags. verbose enables the per
// action debug records; a nil w means stderr.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	Logger = newLogger(w, jsonOutput, level)
}

// Debug records detail about single render, copy and scan steps.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info records run milestones.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn records a degraded but non fatal condition, such as a fallback.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// With returns a logger carrying attrs on every record, e.g. the family and
// distribution of a run.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
