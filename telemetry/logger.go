// Package telemetry provides the structured logging and metrics surface the
// cmd/stochkit driver wraps around a simulation run. Neither the stochastic nor
// the agents package imports it: the engine never logs or emits metrics itself.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogFormat selects how log lines are rendered.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig configures a Logger.
type LoggerConfig struct {
	Verbose bool
	Format  LogFormat
	Output  io.Writer
}

// Logger is a thin wrapper over zerolog.Logger, matching the field-pair call
// convention used throughout this driver's ground truth.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger returns a Logger configured per cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == LogFormatText {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339, NoColor: false}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()
	if cfg.Verbose {
		zlog = zlog.Level(zerolog.DebugLevel)
	} else {
		zlog = zlog.Level(zerolog.InfoLevel)
	}

	return &Logger{logger: zlog}
}

// Debug logs a debug-level event with key/value field pairs.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	event := l.logger.Debug()
	l.addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info-level event with key/value field pairs.
func (l *Logger) Info(msg string, fields ...interface{}) {
	event := l.logger.Info()
	l.addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error-level event with key/value field pairs. Used at the CLI
// boundary to report a fatal engine error before the process exits non-zero.
func (l *Logger) Error(msg string, fields ...interface{}) {
	event := l.logger.Error()
	l.addFields(event, fields...)
	event.Msg(msg)
}

func (l *Logger) addFields(event *zerolog.Event, fields ...interface{}) {
	if len(fields)%2 != 0 {
		event.Str("logging_error", "odd number of fields")
		return
	}
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event.Str("logging_error", fmt.Sprintf("field key at index %d is not a string", i))
			continue
		}
		event.Interface(key, fields[i+1])
	}
}
