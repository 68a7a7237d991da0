// =============================================================================
// Picking List Generator - Logging
// =============================================================================
//
// Stages receive a leveled Logger rather than reaching for a process-wide
// singleton, so tests can capture output without global side effects. The
// production implementation is a thin wrapper over zerolog; tests use the
// Capture logger from this package.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the leveled logging collaborator injected into every stage.
// Messages are printf-style.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// ZEROLOG IMPLEMENTATION
// =============================================================================

// Options configures the production logger.
type Options struct {
	// Level is one of "debug", "info", "warn", "error". Default: "info".
	Level string

	// Format is "console" or "json". Default: "console".
	Format string

	// Output defaults to stderr, keeping stdout free for the run summary.
	Output io.Writer
}

type zeroLogger struct {
	log zerolog.Logger
}

// New creates a zerolog-backed Logger.
func New(opts Options) Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	if opts.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	level := parseLevel(opts.Level)
	log := zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(level)

	return &zeroLogger{log: log}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *zeroLogger) Debug(msg string, args ...interface{}) { z.log.Debug().Msgf(msg, args...) }
func (z *zeroLogger) Info(msg string, args ...interface{})  { z.log.Info().Msgf(msg, args...) }
func (z *zeroLogger) Warn(msg string, args ...interface{})  { z.log.Warn().Msgf(msg, args...) }
func (z *zeroLogger) Error(msg string, args ...interface{}) { z.log.Error().Msgf(msg, args...) }

// init keeps zerolog's global time format stable across the process.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// =============================================================================
// NOP LOGGER
// =============================================================================

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// =============================================================================
// CAPTURE LOGGER (for tests)
// =============================================================================

// Entry is one captured log record.
type Entry struct {
	Level   string
	Message string
}

// Capture is a Logger that records entries in memory.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

// NewCapture creates an empty capture logger.
func NewCapture() *Capture { return &Capture{} }

func (c *Capture) record(level, msg string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Level: level, Message: fmt.Sprintf(msg, args...)})
}

func (c *Capture) Debug(msg string, args ...interface{}) { c.record("debug", msg, args...) }
func (c *Capture) Info(msg string, args ...interface{})  { c.record("info", msg, args...) }
func (c *Capture) Warn(msg string, args ...interface{})  { c.record("warn", msg, args...) }
func (c *Capture) Error(msg string, args ...interface{}) { c.record("error", msg, args...) }

// Entries returns a copy of everything recorded so far.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Messages returns the recorded messages at one level, in order.
func (c *Capture) Messages(level string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, e := range c.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
