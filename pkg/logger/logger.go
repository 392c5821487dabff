// Package logger owns the zerolog logger shared by the whole process.
// cmd/api builds it with Init; packages take children from Component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Level   string    // trace, debug, info, warn or error; anything else is info
	Pretty  bool      // console writer instead of JSON
	Output  io.Writer // os.Stdout when nil
	Service string    // stamped on every entry as "service" when set
}

var (
	mu     sync.Mutex
	shared *zerolog.Logger
)

// Init builds the shared logger. Calls after the first return it unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if shared == nil {
		l := build(opts)
		shared = &l
	}
	return *shared
}

// Get returns the shared logger and panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if shared == nil {
		panic("logger: Get() called before Init()")
	}
	return *shared
}

func build(opts Options) zerolog.Logger {
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

	fields := zerolog.New(out).Level(lvl).With().Timestamp()
	if opts.Service != "" {
		fields = fields.Str("service", opts.Service)
	}
	return fields.Caller().Logger()
}

// Component returns a child logger tagged component=name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset lets tests call Init again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	shared = nil
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
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
