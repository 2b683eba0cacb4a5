// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// TRIVA data publish agent.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains run-scoped loggers
// via FromContext after a parent attached one with WithContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Option customises a logger built by NewLogger.
type Option func(*options)

type options struct {
	level   zerolog.Level
	out     io.Writer
	logFile string
}

// WithLevel sets the minimum level by name ("debug", "info", "warn", ...).
// Unknown or empty names keep the default info level.
func WithLevel(level string) Option {
	return func(o *options) {
		if level == "" {
			return
		}
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// WithFile tees every entry into a size-rotated log file at path.
// An empty path disables file output.
func WithFile(path string) Option {
	return func(o *options) {
		o.logFile = path
	}
}

// WithOutput replaces the primary writer (os.Stdout by default).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "agent", "update").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs of different
//     commands;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written in JSON format to os.Stdout and, when WithFile is given,
// to a lumberjack-rotated file as well.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.InfoLevel, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	out := o.out
	if o.logFile != "" {
		out = zerolog.MultiLevelWriter(o.out, &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		})
	}

	logger := zerolog.New(out).Level(o.level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a child *Logger carrying the extra string fields given as
// key/value pairs. A trailing key without a value is ignored.
func (l *Logger) Child(kv ...string) *Logger {
	c := l.Logger.With()
	for i := 0; i+1 < len(kv); i += 2 {
		c = c.Str(kv[i], kv[i+1])
	}
	return &Logger{c.Logger()}
}

// WithContext attaches the logger to ctx so callees can retrieve it with
// FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger (disabled unless configured), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
