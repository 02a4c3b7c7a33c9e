package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return an empty Attr for zero inputs, so call sites
// never need nil checks: log.Info("msg", logger.Error(err)) is safe when
// err is nil.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Event names a lifecycle event within a component.
func Event(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("event", name)
}

// Elapsed logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID tags a record with the request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
