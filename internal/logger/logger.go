// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the purchase tracker binaries.
//
// The Logger type embeds zerolog.Logger so the whole zerolog API is
// available on *Logger. Request and job scoped loggers travel in the
// context and are read back with FromContext or FromRequest.
//
// The minimum level comes from the LOG_LEVEL environment variable
// (trace, debug, info, warn, error). It is read before the configuration
// is assembled so that configuration errors are logged too.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable holding the minimum log level.
const LevelEnv = "LOG_LEVEL"

// clientLogFile is created under the user cache directory.
const clientLogFile = "purchase-tracker/client.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger returns a logger for the command line client.
//
// Stdout belongs to command output, so entries go to a file in the user
// cache directory. When the file cannot be opened logging is discarded.
func NewClientLogger(role string) *Logger {
	var w io.Writer = io.Discard
	if f, err := openClientLogFile(); err == nil {
		w = f
	}

	return New(w, role)
}

// New builds a logger writing JSON entries to w.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(ParseLevel(os.Getenv(LevelEnv)))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel maps a level name to a zerolog level. Empty or unknown names
// yield info.
func ParseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog's
// default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func openClientLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, filepath.FromSlash(clientLogFile))
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
