// Package rslog provides structured logging for the decoder demonstration
// CLI. It wraps log/slog with conveniences scoped to a decode run: which
// CLI component is logging, and which correction algorithm (Berlekamp-
// Massey or Euclidean) a given record came from. The algorithm packages
// (gf256, poly, rsdecode) never import it — they are pure, synchronous
// computations with no I/O of their own.
package rslog

import (
	"log/slog"
	"os"
)

// Algorithm identifies which error-correction algorithm produced a log
// record.
type Algorithm string

const (
	AlgorithmBM        Algorithm = "bm"
	AlgorithmEuclidean Algorithm = "euclidean"
)

// Logger wraps slog.Logger with decode-run scoping.
type Logger struct {
	inner *slog.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo)
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger tagged with the given CLI component name,
// e.g. "rsdemo".
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// ForAlgorithm returns a child logger tagged with the correction algorithm
// that produced the records logged through it, so a fixture's bm and
// euclidean runs can be told apart in the output stream.
func (l *Logger) ForAlgorithm(a Algorithm) *Logger {
	return &Logger{inner: l.inner.With("algorithm", string(a))}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
