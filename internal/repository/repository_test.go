package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabverse/collabverse/internal/repository"
)

func TestSeedDemo(t *testing.T) {
	t.Parallel()

	demo := repository.SeedDemo()

	projects := demo.Projects.List()
	require.Len(t, projects, 2)
	assert.Equal(t, "Atlas Redesign", projects[0].Name, "list is ordered by name")

	atlas, ok := demo.Projects.Get(repository.SeedProjectAtlasID)
	require.True(t, ok)
	assert.Equal(t, repository.SeedWorkspaceID, atlas.WorkspaceID)

	assert.Len(t, demo.Listings.List(), 3)

	role, ok := demo.Memberships.Get(repository.SeedProjectAtlasID, "ann@test.io")
	require.True(t, ok)
	assert.Equal(t, repository.MemberRoleMember, role)

	budget, ok := demo.Budgets.Get(repository.SeedProjectAtlasID)
	require.True(t, ok)
	assert.Equal(t, int64(3125000), budget.Remaining())
}

func TestProjectsCreate(t *testing.T) {
	t.Parallel()

	projects := repository.NewProjects()
	created := projects.Create("ws-1", "New Project", "active")
	require.NotEmpty(t, created.ID)

	got, ok := projects.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	_, ok = projects.Get("missing")
	assert.False(t, ok)
}

func TestMembershipsCaseInsensitive(t *testing.T) {
	t.Parallel()

	members := repository.NewMemberships()
	members.Set("prj-1", "Ann@Test.IO", repository.MemberRoleAdmin)

	role, ok := members.Get("prj-1", "ann@test.io")
	require.True(t, ok)
	assert.Equal(t, repository.MemberRoleAdmin, role)

	_, ok = members.Get("prj-2", "ann@test.io")
	assert.False(t, ok)
}
