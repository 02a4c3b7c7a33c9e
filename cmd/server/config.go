package main

import (
	"github.com/collabverse/collabverse/internal/server"
	"github.com/collabverse/collabverse/internal/session"
	"github.com/collabverse/collabverse/internal/sessiontransport"
)

// Config aggregates every component configuration the demo server needs,
// loaded from the environment in one parse.
type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"collabverse"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	Server        server.Config
	SessionCookie sessiontransport.Config
	Policy        session.PolicyConfig
}

// IsProduction reports whether the deployment environment is production.
// It controls the log format and forces the Secure cookie attribute.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
