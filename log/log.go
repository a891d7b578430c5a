// Package log is a small leveled logger in the go-ethereum-family style seen
// throughout the corpus this was built against: a handful of package-level
// functions (Trace/Debug/Info/Warn/Error) taking a message plus alternating
// key/value pairs, backed by log/slog. The node store's slow disk-path hits
// and the CLI use this instead of fmt.Println.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Level mirrors slog.Level with the names this corpus uses.
type Level = slog.Level

const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var root = slog.New(NewTerminalHandler(os.Stderr, LevelInfo))

// SetDefault replaces the package-level logger, e.g. to switch to the JSON
// handler or raise the level from a loaded Config.
func SetDefault(l *slog.Logger) { root = l }

// NewTerminalHandler returns a human-readable handler that prints slog's
// text format ("time=... level=... msg=... key=value ...") for a terminal.
func NewTerminalHandler(w *os.File, level Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewJSONHandler returns a structured handler for log aggregation, the
// alternative format offered alongside the terminal handler.
func NewJSONHandler(w *os.File, level Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

func Trace(msg string, kv ...any) { root.Log(context.Background(), LevelTrace, msg, kv...) }
func Debug(msg string, kv ...any) { root.Debug(msg, kv...) }
func Info(msg string, kv ...any)  { root.Info(msg, kv...) }
func Warn(msg string, kv ...any)  { root.Warn(msg, kv...) }
func Error(msg string, kv ...any) { root.Error(msg, kv...) }

// New returns a logger scoped with the given key/value context, e.g.
// log.New("component", "nodestore").
func New(kv ...any) *slog.Logger { return root.With(kv...) }
