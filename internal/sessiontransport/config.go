package sessiontransport

import "time"

// Config provides environment-based configuration for the cookie transport.
type Config struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"collabverse_demo_session"`
	MaxAge     time.Duration `env:"SESSION_COOKIE_MAX_AGE" envDefault:"168h"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// DefaultConfig returns a Config with the fixed demo defaults.
func DefaultConfig() Config {
	return Config{
		CookieName: DefaultCookieName,
		MaxAge:     168 * time.Hour,
	}
}

// NewFromConfig creates a cookie transport from configuration. The caller
// is expected to force Secure on in production deployments regardless of
// the environment value.
func NewFromConfig(cfg Config) *Cookie {
	return New(cfg.CookieName, cfg.MaxAge, cfg.Secure)
}
