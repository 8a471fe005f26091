// Package logger builds the diagnostic logger for litemon components.
//
// The dashboard owns the terminal, so logs go to a rotated file rather
// than stdout/stderr. With no file configured, logging is disabled.
package logger

import (
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"litemon/internal/config"
)

// maxBackups is the number of rotated log files kept on disk.
const maxBackups = 3

// New creates a zerolog logger writing to the configured file.
// An empty file path returns a disabled logger.
func New(cfg config.LogConfig) zerolog.Logger {
	if cfg.File == "" {
		return zerolog.Nop()
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}

	return zerolog.New(writer).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Noop returns a logger that discards all messages.
// Useful for tests and for components constructed without a config.
func Noop() zerolog.Logger {
	return zerolog.Nop()
}

// parseLevel maps a config level name to a zerolog level.
// Unknown names fall back to info; config validation rejects them earlier.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
