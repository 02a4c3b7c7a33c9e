package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/collabverse/collabverse/internal/finance"
	"github.com/collabverse/collabverse/internal/response"
)

func (d Deps) listProjects(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, response.JSON(map[string]any{
		"projects": d.Repo.Projects.List(),
	}))
}

func (d Deps) getProject(w http.ResponseWriter, r *http.Request) {
	project, ok := d.Repo.Projects.Get(mux.Vars(r)["id"])
	if !ok {
		d.render(w, r, response.NotFound())
		return
	}
	d.render(w, r, response.JSON(project))
}

// listMarketplace serves the public catalog; no session is required.
func (d Deps) listMarketplace(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, response.JSON(map[string]any{
		"listings": d.Repo.Listings.List(),
	}))
}

// financeSummary reports a project budget together with the finance role
// derived for the requesting session.
func (d Deps) financeSummary(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project")

	budget, ok := d.Repo.Budgets.Get(projectID)
	if !ok {
		d.render(w, r, response.NotFound())
		return
	}

	sess := SessionFromContext(r.Context())
	role := finance.Derive(sess.Email, d.Policy.IsAdminEmail, func(email string) (string, bool) {
		return d.Repo.Memberships.Get(projectID, email)
	})

	d.render(w, r, response.JSON(map[string]any{
		"projectId":      budget.ProjectID,
		"role":           role,
		"currency":       budget.Currency,
		"limitCents":     budget.LimitCents,
		"spentCents":     budget.SpentCents,
		"remainingCents": budget.Remaining(),
	}))
}

// flagOverview reports the resolved state of the known flags, for the
// admin panel.
func (d Deps) flagOverview(w http.ResponseWriter, r *http.Request) {
	flags := make(map[string]bool, len(KnownFlags))
	for _, name := range KnownFlags {
		flags[name] = d.Flags.Enabled(name, d.FlagOverrides)
	}
	d.render(w, r, response.JSON(map[string]any{"flags": flags}))
}

// liveness reports that the process is running. No dependency checks.
func liveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}
