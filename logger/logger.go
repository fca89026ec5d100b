// Package logger builds the zap loggers used by the trainer commands
package logger

import "go.uber.org/zap"

// New returns a zap logger. When debug is true, uses development config
// (human-readable, debug level); otherwise uses production config (JSON, info level).
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Must is New which falls back to a no-op logger on error
func Must(debug bool) *zap.Logger {
	log, err := New(debug)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
