package repository

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// Membership role names as stored per project. The finance module maps
// these onto its own authorization levels.
const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
	MemberRoleViewer = "viewer"
)

// Memberships records which role an email holds within a project.
type Memberships struct {
	items *gocache.Cache
}

// NewMemberships creates an empty membership table.
func NewMemberships() *Memberships {
	return &Memberships{items: newCollection()}
}

// Set records a membership. Emails are matched case-insensitively.
func (m *Memberships) Set(projectID, email, role string) {
	m.items.SetDefault(membershipKey(projectID, email), role)
}

// Get returns the role an email holds in a project.
func (m *Memberships) Get(projectID, email string) (string, bool) {
	v, ok := m.items.Get(membershipKey(projectID, email))
	if !ok {
		return "", false
	}
	return v.(string), true
}

func membershipKey(projectID, email string) string {
	return projectID + "/" + strings.ToLower(strings.TrimSpace(email))
}
