// Package observability provides structured logging for the integration runner.
package observability

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logger interface used across the runner.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger wraps charmbracelet/log.
type logger struct {
	l *charmlog.Logger
}

// NewLogger creates a new logger writing to stderr at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(level string) Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	})
	if parsed, err := charmlog.ParseLevel(level); err == nil {
		l.SetLevel(parsed)
	}
	return &logger{l: l}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.l.Debug(msg, kvs(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.l.Info(msg, kvs(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.l.Warn(msg, kvs(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.l.Error(msg, kvs(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{l: l.l.With(kvs(fields)...)}
}

func kvs(fields []Field) []any {
	out := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		out = append(out, f.Key, f.Value)
	}
	return out
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
