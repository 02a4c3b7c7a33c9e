package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/collabverse/collabverse/internal/response"
	"github.com/collabverse/collabverse/internal/session"
)

const (
	dashboardPath = "/app/dashboard"
	loginPath     = "/login"

	minPasswordLength = 6

	// Validation errors stay generic on purpose: which field failed is
	// never disclosed.
	msgInvalidRegistration = "Invalid registration details"
	msgInvalidCredentials  = "Invalid credentials"
	msgRegistrationClosed  = "Registration is disabled"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register creates a demo identity and issues the session cookie.
func (d Deps) register(w http.ResponseWriter, r *http.Request) {
	if !d.Policy.RegistrationOpen() {
		d.render(w, r, response.Forbidden(msgRegistrationClosed))
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		d.render(w, r, response.BadRequest(msgInvalidRegistration))
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") || len(req.Password) < minPasswordLength {
		d.render(w, r, response.BadRequest(msgInvalidRegistration))
		return
	}

	d.issueSession(w, email)
	d.render(w, r, response.JSON(map[string]string{"redirect": dashboardPath}))
}

// login re-issues a session for an existing demo identity. The demo keeps
// no user table, so the same validation posture applies as on register.
func (d Deps) login(w http.ResponseWriter, r *http.Request) {
	if !d.Policy.RegistrationOpen() {
		d.render(w, r, response.Forbidden(msgRegistrationClosed))
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		d.render(w, r, response.BadRequest(msgInvalidCredentials))
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") || len(req.Password) < minPasswordLength {
		d.render(w, r, response.BadRequest(msgInvalidCredentials))
		return
	}

	d.issueSession(w, email)
	d.render(w, r, response.JSON(map[string]string{"redirect": dashboardPath}))
}

// logout clears the session cookie. Clients that accept JSON get the
// redirect target in the body; the HTML flow gets a 303.
func (d Deps) logout(w http.ResponseWriter, r *http.Request) {
	if token := d.Transport.Extract(r); token != "" {
		d.Sessions.Revoke(token)
	}
	d.Transport.Revoke(w)

	if acceptsJSON(r) {
		d.render(w, r, response.JSON(map[string]string{"redirect": loginPath}))
		return
	}
	d.render(w, r, response.SeeOther(loginPath))
}

func (d Deps) issueSession(w http.ResponseWriter, email string) {
	role := session.RoleUser
	if d.Policy.IsAdminEmail(email) {
		role = session.RoleAdmin
	}
	token := d.Sessions.Issue(session.New(email, role))
	d.Transport.Embed(w, token)
}

func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
