// Package sessiontransport attaches the demo session token to HTTP
// responses as a cookie with one fixed attribute policy, so login,
// register and logout share a single place that knows the security
// attributes instead of repeating them per call site.
package sessiontransport

import (
	"net/http"
	"time"
)

// DefaultCookieName is the fixed session cookie name.
const DefaultCookieName = "collabverse_demo_session"

// Cookie embeds and revokes session tokens on HTTP responses.
// Both operations are pure response mutation and cannot fail.
type Cookie struct {
	name   string
	maxAge time.Duration
	secure bool
}

// New creates a cookie transport. Secure should be true only when the
// deployment environment is production; the remaining attributes are
// fixed policy (HttpOnly, SameSite=Lax, Path=/).
func New(name string, maxAge time.Duration, secure bool) *Cookie {
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{name: name, maxAge: maxAge, secure: secure}
}

// Name returns the cookie name the transport operates on.
func (c *Cookie) Name() string {
	return c.name
}

// Embed attaches the token to the response. It also forces
// Cache-Control: no-store so intermediary caches never hold a response
// that carries authenticated state.
func (c *Cookie) Embed(w http.ResponseWriter, token string) {
	w.Header().Set("Cache-Control", "no-store")
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}

// Revoke attaches an immediate-expiry cookie that instructs the client to
// drop the session. Same attribute policy as Embed; the negative MaxAge
// serializes as Max-Age=0 on the wire.
func (c *Cookie) Revoke(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}

// Extract reads the raw session token from the request, or "" when the
// cookie is absent. It never returns an error; a missing cookie is simply
// "no session".
func (c *Cookie) Extract(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
