package session

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// DefaultMaxAge is the fixed session lifetime. It matches the cookie
// MaxAge applied by the transport so client and server expiry agree.
const DefaultMaxAge = 7 * 24 * time.Hour

// Codec serializes sessions into opaque string tokens suitable for a
// cookie value. Encoding is base64url over the JSON record; decoding is
// the exact inverse and additionally enforces the max-age window.
type Codec struct {
	maxAge time.Duration
	now    func() time.Time
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithMaxAge sets the validity window checked at decode time.
// Zero disables expiry enforcement.
func WithMaxAge(d time.Duration) CodecOption {
	return func(c *Codec) {
		c.maxAge = d
	}
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec creates a codec with the default max age.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode serializes the session into an opaque token. There is no failure
// path at this layer; callers validate email and role shape before
// encoding, the way the registration handler does.
func (c *Codec) Encode(sess Session) string {
	// Marshalling a flat struct of string/int fields cannot fail.
	payload, _ := json.Marshal(sess)
	return base64.RawURLEncoding.EncodeToString(payload)
}

// Decode reconstructs a session from a raw cookie token. It returns nil
// for an empty token, for anything that does not parse back into the
// three expected fields, for an invalid role literal, and for tokens
// whose issuance time falls outside the max-age window. It never panics
// for any string input.
func (c *Codec) Decode(token string) *Session {
	if token == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil
	}
	if sess.Email == "" || !sess.Role.Valid() {
		return nil
	}
	if c.maxAge > 0 && c.now().Sub(sess.IssuedTime()) > c.maxAge {
		return nil
	}

	return &sess
}
