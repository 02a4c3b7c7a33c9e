// Package handlers wires the HTTP surface of the demo deployment: the
// auth endpoints that issue and clear the session cookie, and the
// flag-gated JSON API routes in front of the demo repositories.
package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/collabverse/collabverse/internal/feature"
	"github.com/collabverse/collabverse/internal/logger"
	"github.com/collabverse/collabverse/internal/repository"
	"github.com/collabverse/collabverse/internal/response"
	"github.com/collabverse/collabverse/internal/session"
	"github.com/collabverse/collabverse/internal/sessiontransport"
)

// Feature flag names governing the API surface. Flags are string-typed
// and unregistered by design; these constants exist for call-site
// readability, not as a closed set.
const (
	FlagProjectsCore       = "projectsCore"
	FlagMarketplaceCatalog = "marketplaceCatalog"
	FlagBudgetLimits       = "budgetLimits"
	FlagAdminPanel         = "adminPanel"
)

// KnownFlags lists the flags the admin overview reports on.
var KnownFlags = []string{
	FlagProjectsCore,
	FlagMarketplaceCatalog,
	FlagBudgetLimits,
	FlagAdminPanel,
}

// Deps carries everything the HTTP surface needs. All fields except Log
// and FlagOverrides are required.
type Deps struct {
	Log       *slog.Logger
	Flags     *feature.Resolver
	Policy    *session.Policy
	Sessions  session.Store
	Transport *sessiontransport.Cookie
	Repo      *repository.Demo

	// FlagOverrides forces flag decisions for this deployment
	// irrespective of the environment.
	FlagOverrides map[string]bool
}

func (d Deps) normalized() Deps {
	switch {
	case d.Flags == nil:
		panic("handlers: flag resolver is required")
	case d.Policy == nil:
		panic("handlers: session policy is required")
	case d.Sessions == nil:
		panic("handlers: session store is required")
	case d.Transport == nil:
		panic("handlers: session transport is required")
	case d.Repo == nil:
		panic("handlers: repositories are required")
	}
	if d.Log == nil {
		d.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

// render executes a response and records rendering failures, which are
// the only errors this surface cannot report to the client.
func (d Deps) render(w http.ResponseWriter, r *http.Request, resp response.Response) {
	if err := resp(w, r); err != nil {
		d.Log.Error("render response",
			logger.Component("http"),
			logger.Error(err),
			slog.String("path", r.URL.Path),
		)
	}
}
