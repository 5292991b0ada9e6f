// Package logger provides a logging utility based on log/slog
//
// Debug logging can be enabled by setting the MYMATH_DEBUG environment variable:
//
//	export MYMATH_DEBUG=1
//
// All output goes to stderr; stdout is left to the programs for their results.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// EnvDebug is the environment variable that enables debug logging.
const EnvDebug = "MYMATH_DEBUG"

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	opts := &slog.HandlerOptions{
		Level: levelFromEnv(os.Getenv(EnvDebug)),
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)

	// Replace the default slog logger too
	slog.SetDefault(Logger)
}

// levelFromEnv maps the value of MYMATH_DEBUG to a log level.
func levelFromEnv(v string) slog.Level {
	if v != "" && strings.ToLower(v) != "false" && v != "0" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
