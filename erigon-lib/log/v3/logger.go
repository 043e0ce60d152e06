package log

import (
	"log/slog"
	"os"
)

// Logger is the subset of erigon-lib/log/v3's structured logging API the
// proof-of-work core relies on: leveled methods taking a message and an
// even-length list of key/value pairs, mirroring the log15-derived
// interface the rest of Erigon codes against.
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	New(ctx ...any) Logger
}

type slogLogger struct {
	inner *slog.Logger
}

// New returns a Logger backed by the standard library's structured logger,
// writing to stderr, with ctx appended as fixed key/value pairs on every
// subsequent call.
func New(ctx ...any) Logger {
	return slogLogger{inner: slog.New(slog.NewTextHandler(os.Stderr, nil))}.New(ctx...)
}

func (l slogLogger) New(ctx ...any) Logger {
	return slogLogger{inner: l.inner.With(ctx...)}
}

func (l slogLogger) Trace(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l slogLogger) Debug(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l slogLogger) Info(msg string, ctx ...any)  { l.inner.Info(msg, ctx...) }
func (l slogLogger) Warn(msg string, ctx ...any)  { l.inner.Warn(msg, ctx...) }
func (l slogLogger) Error(msg string, ctx ...any) { l.inner.Error(msg, ctx...) }

var root Logger = New()

// Root returns the package-wide default logger.
func Root() Logger { return root }

// SetRoot replaces the package-wide default logger, for callers that want
// to route the core's log lines through their own handler.
func SetRoot(l Logger) { root = l }

func Trace(msg string, ctx ...any) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { root.Error(msg, ctx...) }
