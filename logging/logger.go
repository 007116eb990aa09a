// Package logging gives the rest of the module a single structured
// logging interface, backed by zerolog, with a standard-library
// fallback for callers that already manage a *log.Logger.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the structured logging interface used by the homolog
// facade and mconfig.Policy; the core algorithm packages do not log.
// It has no knowledge of homology, matrices or complexes; every
// call site passes domain values in through Field.
type Logger interface {
	Info(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// Field is a single key-value pair attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Str creates a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an integer field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Err creates an error field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// ZerologAdapter adapts a zerolog.Logger to Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a Logger writing structured events to
// stderr with a timestamp, suitable for the examples and for tests
// that want a real sink rather than a no-op.
func NewDefaultLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(os.Stderr).With().Timestamp().Logger())
}

// NewComponentLogger tags every event emitted through the returned
// Logger with a "component" field, so a caller building a homolog
// pipeline can distinguish reduction, chain and cubical log lines.
func NewComponentLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	)
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.Err(v)
		case fmt.Stringer:
			event = event.Str(f.Key, v.String())
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Error logs an error message together with err.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// StdLoggerAdapter adapts a standard library *log.Logger to Logger,
// for callers that already have one wired and don't want a second
// logging stack on the wire.
type StdLoggerAdapter struct {
	logger *stdlog.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(logger *stdlog.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Printf("[INFO] %s %v", msg, fields)
}

func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Printf("[DEBUG] %s %v", msg, fields)
}

func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	s.logger.Printf("[ERROR] %s: %v %v", msg, err, fields)
}

// NopLogger discards every event. Tests and library callers who do
// not want a logging dependency pass this.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...Field)            {}
func (NopLogger) Debug(msg string, fields ...Field)           {}
func (NopLogger) Error(msg string, err error, fields ...Field) {}

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
	_ Logger = NopLogger{}
)
