// Package log is the process-wide structured logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var logger = newLogger(os.Stdout, slog.LevelInfo, false)

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// Err is the attribute used for every logged error.
func Err(err error) slog.Attr {
	return tint.Err(err)
}

func SetLevel(level slog.Level) {
	logger = newLogger(os.Stdout, level, false)
}

// SetOutput redirects logging to w without colors, mainly for tests.
func SetOutput(w io.Writer, level slog.Level) {
	logger = newLogger(w, level, true)
}

// Logger exposes the underlying logger for libraries that accept one.
func Logger() *slog.Logger {
	return logger
}
