package logger

import (
	"sync"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Default logger: default template, one line per event on stderr
	h := handler.NewStream(handler.StreamConfig{
		Formatter: formatter.NewSimple(formatter.Config{}),
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs a message at the given priority using the default logger
func Log(p core.Priority, msg string, args ...interface{}) {
	Default().log(p, msg, args)
}

// Emerg logs an emergency message using the default logger
func Emerg(msg string, args ...interface{}) {
	Default().log(core.Emerg, msg, args)
}

// Alert logs an alert message using the default logger
func Alert(msg string, args ...interface{}) {
	Default().log(core.Alert, msg, args)
}

// Crit logs a critical message using the default logger
func Crit(msg string, args ...interface{}) {
	Default().log(core.Crit, msg, args)
}

// Error logs an error message using the default logger
func Error(msg string, args ...interface{}) {
	Default().log(core.Err, msg, args)
}

// Warn logs a warning message using the default logger
func Warn(msg string, args ...interface{}) {
	Default().log(core.Warn, msg, args)
}

// Notice logs a notice using the default logger
func Notice(msg string, args ...interface{}) {
	Default().log(core.Notice, msg, args)
}

// Info logs an info message using the default logger
func Info(msg string, args ...interface{}) {
	Default().log(core.Info, msg, args)
}

// Debug logs a debug message using the default logger
func Debug(msg string, args ...interface{}) {
	Default().log(core.Debug, msg, args)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
