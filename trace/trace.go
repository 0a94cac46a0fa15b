// Package trace implements the process-wide diagnostic sink (spec.md §4.8):
// an integer log level, an installable sink, and a default that writes to
// standard output. The singleton is created lazily on first use and torn
// down explicitly; tests should call Reset between cases (spec.md §6
// REDESIGN note: "keep a global only as a fallback for legacy callers" —
// this package is that fallback, backed by github.com/rs/zerolog).
package trace

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level is the minimum severity a message must carry to reach the sink.
// 0 is silent; spec.md §4.8 requires at least "0 = silent, >=1 = errors".
type Level int

const (
	LevelSilent Level = 0
	LevelError  Level = 1
	LevelWarn   Level = 2
	LevelInfo   Level = 3
)

// Sink receives one fully formatted diagnostic line. It is the Go analog
// of spec.md §6's two C sink signatures ("(const char*) -> int" and
// "(const char*) -> void") collapsed into a single shape, since Go has no
// need for the int-returning variant.
type Sink func(line string)

// maxLineLen mirrors spec.md §4.8's fixed 1024-byte stack buffer: longer
// messages are truncated rather than reallocated.
const maxLineLen = 1024

type tracer struct {
	mu     sync.RWMutex
	level  Level
	sink   Sink
	logger zerolog.Logger
}

var (
	instance   *tracer
	instanceMu sync.Mutex
)

// get returns the process-wide tracer, lazily creating it with the default
// stdout sink on first use.
func get() *tracer {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		instance = newDefaultTracer()
	}

	return instance
}

func newDefaultTracer() *tracer {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	return &tracer{level: LevelError, logger: logger}
}

// Configure installs level and sink. Per spec.md §4.8, the sink is meant to
// be set once during initialization; concurrent decoding does not mutate
// it, so callers changing it at runtime must serialize their own calls.
func Configure(level Level, sink Sink) {
	t := get()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.level = level
	t.sink = sink
}

// Reset tears the tracer down and restores the lazily-created default.
// Intended for test isolation (spec.md §4.8: "tests must reset it between
// cases").
func Reset() {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	instance = nil
}

// Errorf emits a formatted line at LevelError if the configured level allows it.
func Errorf(format string, args ...any) {
	get().emit(LevelError, format, args...)
}

// Warnf emits a formatted line at LevelWarn if the configured level allows it.
func Warnf(format string, args ...any) {
	get().emit(LevelWarn, format, args...)
}

// Infof emits a formatted line at LevelInfo if the configured level allows it.
func Infof(format string, args ...any) {
	get().emit(LevelInfo, format, args...)
}

func (t *tracer) emit(level Level, format string, args ...any) {
	t.mu.RLock()
	configured := t.level
	sink := t.sink
	logger := t.logger
	t.mu.RUnlock()

	if configured < level {
		return
	}

	line := safeSprintf(format, args...)

	if sink != nil {
		sink(line)
		return
	}

	switch level {
	case LevelError:
		logger.Error().Msg(line)
	case LevelWarn:
		logger.Warn().Msg(line)
	default:
		logger.Info().Msg(line)
	}
}
