// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "PROCFIND_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	currentLevel           = LevelInfo
	isStructured           = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger to write to stderr.
// debug enables debug records; structured selects JSON over text.
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter is SetupLogger with a custom destination.
// This function is safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = LevelInfo
	if debug || os.Getenv(EnvDebug) == "true" {
		currentLevel = LevelDebug
	}
	isStructured = structured
	outputWriter = w
	rebuild()
}

// SetLevel changes the level while keeping the current writer and format.
// This function is safe for concurrent use.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = level
	rebuild()
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// IsDebugEnabled reports whether debug records are emitted.
func IsDebugEnabled() bool {
	return GetLevel() == LevelDebug
}

// ParseLevel parses "debug", "info", "warn"/"warning" or "error", ignoring case.
// Unrecognized values yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger returns the underlying slog.Logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Debug logs at debug level on the global logger.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs at info level on the global logger.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs at warn level on the global logger.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs at error level on the global logger.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// rebuild replaces the global logger. Caller must hold mu.
func rebuild() {
	opts := &slog.HandlerOptions{Level: slogLevel(currentLevel)}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
