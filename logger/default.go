package logger

import "github.com/philipp01105/csplog/core"

// Package-level convenience functions using the root sink

// Debug logs a debug message using the root sink
func Debug(msg string, fields ...core.Field) {
	Root().Debug(msg, fields...)
}

// Info logs an info message using the root sink
func Info(msg string, fields ...core.Field) {
	Root().Info(msg, fields...)
}

// Warn logs a warning message using the root sink
func Warn(msg string, fields ...core.Field) {
	Root().Warn(msg, fields...)
}

// Error logs an error message using the root sink
func Error(msg string, fields ...core.Field) {
	Root().Error(msg, fields...)
}

// Infof logs a formatted info message using the root sink
func Infof(format string, args ...interface{}) {
	Root().Infof(format, args...)
}

// Warnf logs a formatted warning message using the root sink
func Warnf(format string, args ...interface{}) {
	Root().Warnf(format, args...)
}

// Errorf logs a formatted error message using the root sink
func Errorf(format string, args ...interface{}) {
	Root().Errorf(format, args...)
}
