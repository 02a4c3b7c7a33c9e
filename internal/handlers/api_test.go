package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabverse/collabverse/internal/repository"
	"github.com/collabverse/collabverse/internal/session"
)

func TestFeatureGate(t *testing.T) {
	t.Parallel()

	t.Run("disabled flag answers 404 even with a session", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, map[string]string{"projectsCore": "0"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req = app.withSession(req, "ann@test.io", session.RoleUser)
		rec := app.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	})

	t.Run("deployment overrides force a decision over the environment", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, map[string]string{"marketplaceCatalog": "1"},
			map[string]bool{"marketplaceCatalog": false})

		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/marketplace", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unset flags fail open", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/marketplace", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestProjects(t *testing.T) {
	t.Parallel()

	t.Run("requires a session", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired session is unauthenticated, not an error", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		stale := app.codec.Encode(session.Session{
			Email:    "ann@test.io",
			Role:     session.RoleUser,
			IssuedAt: time.Now().Add(-8 * 24 * time.Hour).UnixMilli(),
		})
		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: stale})
		rec := app.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage cookie is unauthenticated", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-token"})
		rec := app.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lists seeded projects", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req = app.withSession(req, "ann@test.io", session.RoleUser)
		rec := app.do(req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Projects []repository.Project `json:"projects"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Projects, 2)
		assert.Equal(t, "Atlas Redesign", body.Projects[0].Name)
	})

	t.Run("fetches a project by id", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects/"+repository.SeedProjectAtlasID, nil)
		req = app.withSession(req, "ann@test.io", session.RoleUser)
		rec := app.do(req)

		require.Equal(t, http.StatusOK, rec.Code)

		var project repository.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
		assert.Equal(t, repository.SeedProjectAtlasID, project.ID)
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects/prj-missing", nil)
		req = app.withSession(req, "ann@test.io", session.RoleUser)
		rec := app.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	})
}

func TestMarketplace(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)

	// The catalog is public; no session required.
	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/marketplace", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Listings []repository.Listing `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Listings, 3)
}

func TestFinanceSummary(t *testing.T) {
	t.Parallel()

	summary := func(t *testing.T, app *testApp, email string, role session.Role, project string) (*httptest.ResponseRecorder, map[string]any) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/finance/summary?project="+project, nil)
		req = app.withSession(req, email, role)
		rec := app.do(req)

		var body map[string]any
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		}
		return rec, body
	}

	t.Run("membership decides the finance role", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec, body := summary(t, app, "ann@test.io", session.RoleUser, repository.SeedProjectAtlasID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "member", body["role"])
		assert.Equal(t, float64(3125000), body["remainingCents"])
	})

	t.Run("allow-listed admin is owner without membership", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec, body := summary(t, app, "admin@collabverse.test", session.RoleAdmin, repository.SeedProjectAtlasID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "owner", body["role"])
	})

	t.Run("no membership row means viewer", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec, body := summary(t, app, "stranger@test.io", session.RoleUser, repository.SeedProjectAtlasID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "viewer", body["role"])
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec, _ := summary(t, app, "ann@test.io", session.RoleUser, "prj-missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requires a session", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/finance/summary?project=prj-atlas", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminFlags(t *testing.T) {
	t.Parallel()

	t.Run("user role is forbidden", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/flags", nil)
		req = app.withSession(req, "ann@test.io", session.RoleUser)
		rec := app.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin sees the resolved flag map", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, map[string]string{"budgetLimits": "0"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/flags", nil)
		req = app.withSession(req, "admin@collabverse.test", session.RoleAdmin)
		rec := app.do(req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Flags map[string]bool `json:"flags"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Flags["budgetLimits"])
		assert.True(t, body.Flags["projectsCore"])
	})
}

func TestRequestPlumbing(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
