package feature

import (
	"os"
	"strings"
)

// DefaultPublicPrefix is prepended to a flag name when the direct
// environment entry is absent. It mirrors the public-exposure prefix the
// front end uses for flags that must be visible to the browser bundle.
const DefaultPublicPrefix = "PUBLIC_"

// LookupFunc reports an environment entry and whether it is set.
// It matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Resolver answers whether a feature is active. The zero value is not
// usable; construct one with New. A Resolver holds no mutable state and
// is safe for concurrent use.
type Resolver struct {
	lookup LookupFunc
	prefix string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookup replaces the environment lookup function. Tests use this to
// supply a snapshot instead of mutating the process environment.
func WithLookup(fn LookupFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.lookup = fn
		}
	}
}

// WithPublicPrefix overrides the public-exposure prefix.
func WithPublicPrefix(prefix string) Option {
	return func(r *Resolver) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// New creates a resolver backed by os.LookupEnv and the default public prefix.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		lookup: os.LookupEnv,
		prefix: DefaultPublicPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enabled reports whether the named feature is active.
//
// Precedence: an explicit entry in an override map wins; otherwise the
// environment variable named exactly after the flag; otherwise the same
// name behind the public prefix; otherwise enabled. An empty flag name
// means no gate was requested and always resolves to enabled.
//
// A set environment value counts as enabled only when it is one of
// "1", "true", "on" or "enabled" (case-insensitive); any other set value,
// including the empty string, disables the flag.
func (r *Resolver) Enabled(name string, overrides ...map[string]bool) bool {
	if name == "" {
		return true
	}

	for _, m := range overrides {
		if v, ok := m[name]; ok {
			return v
		}
	}

	if v, ok := r.lookup(name); ok {
		return isEnabledToken(v)
	}
	if v, ok := r.lookup(r.prefix + name); ok {
		return isEnabledToken(v)
	}

	return true
}

// isEnabledToken matches the truthy vocabulary of the primary resolver.
func isEnabledToken(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "enabled":
		return true
	}
	return false
}
