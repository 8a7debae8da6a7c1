// Package logger holds the process-wide zerolog instance.
//
// Call Init once from main and Get from anywhere else. Tests that need a
// fresh logger call Reset between cases.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger built by Init.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn or error.
	// Anything else falls back to info.
	Level string
	// Pretty switches from JSON lines to the coloured console writer,
	// which is only meant for local development.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance zerolog.Logger
	ready    bool
)

// Init builds the shared logger. The first call wins; later calls return the
// existing instance unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	instance = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
	ready = true
	return instance
}

// Get returns the shared logger. It panics when Init has not run, which is
// always a wiring bug in main.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get called before Init")
	}
	return instance
}

// Reset discards the shared logger so the next Init rebuilds it. Test use only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.Logger{}
	ready = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
