// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the record store, the terminal
// client and gumictl.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Request and operation scoped loggers travel in a context and are
// read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// LevelEnv selects the minimum level ("debug", "info", "warn", ...).
	// Debug when unset or unparsable.
	LevelEnv = "GUMI_LOG_LEVEL"

	// FileEnv overrides the log file of the terminal client.
	FileEnv = "GUMI_LOG_FILE"

	clientLogFile = "gumi-client.log"
)

var setup sync.Once

// Logger is a zerolog.Logger with application helpers.
type Logger struct {
	zerolog.Logger
}

// configure sets the process-wide zerolog options once. The caller field
// carries the function name rather than file:line.
func configure() {
	setup.Do(func() {
		zerolog.CallerFieldName = "caller"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			name := runtime.FuncForPC(pc).Name()
			if i := strings.LastIndex(name, "/"); i >= 0 {
				return name[i+1:]
			}
			return name
		}
	})

	zerolog.SetGlobalLevel(levelFromEnv())
}

func levelFromEnv() zerolog.Level {
	raw := strings.TrimSpace(os.Getenv(LevelEnv))
	if raw == "" {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return level
}

// New returns a JSON logger writing to w. Every entry carries role, a
// timestamp and the calling function.
func New(w io.Writer, role string) *Logger {
	configure()
	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger logs to stdout. Used by the record store and gumictl.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger logs to a file, since the terminal client owns stdout.
// The file is FileEnv when set, otherwise gumi-client.log next to the
// executable. Stderr is used when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	path := os.Getenv(FileEnv)
	if path == "" {
		execPath, err := os.Executable()
		if err != nil {
			execPath = "."
		}
		path = filepath.Join(filepath.Dir(execPath), clientLogFile)
	}

	var w io.Writer = os.Stderr
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		w = f
	}
	return New(w, role)
}

// Nop discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be given extra fields without
// touching the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithUser returns a child logger tagged with the collection owner.
func (l *Logger) WithUser(userID int64) *Logger {
	return &Logger{l.With().Int64("user_id", userID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
