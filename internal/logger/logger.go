// Package logger builds structured slog loggers with environment presets
// and nil-safe attribute helpers.
package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures the logger factory.
type Option func(*options)

// WithDevelopment configures text output at debug level, tagged with the
// application name.
func WithDevelopment(app string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.json = false
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// WithProduction configures JSON output at info level, tagged with the
// application name.
func WithProduction(app string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.json = true
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// WithLevel overrides the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter forces JSON output.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithOutput redirects log output, for tests.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// New creates a slog logger from the given options. Defaults match
// development: text format, info level, stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}
