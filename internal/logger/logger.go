// Package logger provides verbose logging for the tubedash CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the request pipeline
// (token acquisition, requests, retries).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = zerolog.Nop()
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// rebuild recreates the zerolog logger (caller must hold lock).
func rebuild() {
	if !verbose {
		log = zerolog.Nop()
		return
	}
	cw := zerolog.ConsoleWriter{
		Out:        output,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			if s, ok := i.(string); ok {
				return "[" + strings.ToUpper(levelName(s)) + "]"
			}
			return "[INFO]"
		},
	}
	log = zerolog.New(cw).Level(zerolog.DebugLevel)
}

func levelName(s string) string {
	if s == "warning" {
		return "warn"
	}
	return s
}

// Log returns the structured logger.
// It discards everything unless verbose mode is enabled.
func Log() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Msgf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Info().Msgf(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Warn().Msgf(format, args...)
	}
}
