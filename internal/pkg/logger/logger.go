// Package logger holds the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var defaultLogger zerolog.Logger

// Config represents logger configuration
type Config struct {
	// Level is a zerolog level name such as "debug" or "warn"
	Level string
	// Format is FormatJSON or FormatConsole. "text" is accepted for console.
	Format string
	// Output defaults to os.Stdout
	Output io.Writer
}

// ParseLevel converts a level name, case-insensitively. An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Configure replaces the default logger. An unknown level falls back to info
// and is reported through the new logger.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, levelErr := ParseLevel(config.Level)
	zerolog.SetGlobalLevel(level)

	var writer = config.Output
	switch strings.ToLower(config.Format) {
	case FormatConsole, "text", "pretty":
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger

	if levelErr != nil {
		defaultLogger.Warn().Err(levelErr).Msg("Falling back to info level")
	}
}

// Logger returns the configured logger
func Logger() zerolog.Logger {
	return defaultLogger
}

// Component returns a child logger tagged with the component name
func Component(name string) zerolog.Logger {
	return defaultLogger.With().Str("component", name).Logger()
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func init() {
	Configure(Config{
		Level:  "info",
		Format: FormatConsole,
	})
}
