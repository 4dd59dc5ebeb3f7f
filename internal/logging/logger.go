// Package logging builds the slog loggers used by the jobinsights CLI and API.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDKey is the attribute carrying chi's request id on API log lines
const RequestIDKey = "request_id"

// NewLogger returns a logger writing to w at the named level. format "json"
// selects one JSON object per line; anything else logs key=value text.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs NewLogger(w, level, format) as the slog default.
func Setup(w io.Writer, level, format string) {
	slog.SetDefault(NewLogger(w, level, format))
}

// ParseLevel maps a config level name to a slog.Level, case-insensitively.
// "warning" is read as warn; unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// FromContext is the logger for one API request: the default logger plus
// the request id chi's middleware stored in ctx, if any.
func FromContext(ctx context.Context) *slog.Logger {
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		return slog.Default()
	}
	return slog.Default().With(RequestIDKey, reqID)
}
