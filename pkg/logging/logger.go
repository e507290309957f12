// Package logging configures the zerolog logger shared by the museum clients,
// the CLI and the browser.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"

	// LevelDisabled silences all output; the TUI uses it so log lines do not
	// tear the alternate screen.
	LevelDisabled LogLevel = "disabled"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	level, err := ParseLevel(string(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// ParseLevel converts a level name to a zerolog.Level. The empty string is
// treated as info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger creates a new logger with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// NewBackendLogger creates a component logger bound to one museum backend.
func NewBackendLogger(component, backend string) zerolog.Logger {
	return log.With().Str("component", component).Str("backend", backend).Logger()
}

// Log Level Guidelines:
//
// Debug: per-request flow
//   - Outbound request (host, endpoint)
//   - Id-list store hit/miss
//   - Request token issued, stale result discarded
//
// Info: page lifecycle
//   - Page fetch complete (page, total_pages, items, duration)
//   - CLI startup, config file in use
//
// Warn: degraded but working
//   - Retry attempts (only when retries are enabled)
//   - Rate limiter throttling
//   - Id-list store errors (search falls through to the backend)
//
// Error: the page failed
//   - Search, hydration or listing failure
//   - Configuration errors
//
// Context Fields:
//   - backend: "met" or "artic"
//   - query: Met department or search term
//   - page, total_pages: one-based page and page count
//   - ids: id count in a page slice
//   - status_code, error_class: NetworkError details
//   - token, request_id: request identity within a Session
//   - duration: elapsed time
