package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP surface. Every gated route checks its flag
// before touching a repository; session decoding happens once per request
// in middleware.
func NewRouter(d Deps) http.Handler {
	d = d.normalized()

	r := mux.NewRouter()
	r.Use(RequestID, Logging(d.Log), d.sessionLoader)

	r.HandleFunc("/live", liveness).Methods(http.MethodGet)

	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", d.register).Methods(http.MethodPost)
	auth.HandleFunc("/login", d.login).Methods(http.MethodPost)
	auth.HandleFunc("/logout", d.logout).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/projects", d.gate(FlagProjectsCore, d.requireAuth(d.listProjects))).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", d.gate(FlagProjectsCore, d.requireAuth(d.getProject))).Methods(http.MethodGet)
	api.HandleFunc("/marketplace", d.gate(FlagMarketplaceCatalog, d.listMarketplace)).Methods(http.MethodGet)
	api.HandleFunc("/finance/summary", d.gate(FlagBudgetLimits, d.requireAuth(d.financeSummary))).Methods(http.MethodGet)
	api.HandleFunc("/admin/flags", d.gate(FlagAdminPanel, d.requireAuth(d.requireAdmin(d.flagOverview)))).Methods(http.MethodGet)

	return r
}
