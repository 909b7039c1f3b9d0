// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-contacts.
//
// The server logs JSON to stdout at Debug and above, with the caller's
// function name under "func". The CLI logs to stderr at Info and above so
// that its own output on stdout stays machine readable. Request handlers
// obtain the request-scoped logger (carrying trace_id and, once
// authenticated, username) with FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the server logger tagged with role.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return newLogger(os.Stdout, role, zerolog.DebugLevel, true)
}

// NewClientLogger returns the CLI logger tagged with role.
func NewClientLogger(role string) *Logger {
	return newLogger(os.Stderr, role, zerolog.InfoLevel, false)
}

func newLogger(w io.Writer, role string, level zerolog.Level, withCaller bool) *Logger {
	ctx := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp()
	if withCaller {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithField returns a child of l that adds key=value to every entry.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one, zerolog's default context logger is returned, which is
// disabled unless zerolog.DefaultContextLogger is set.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
