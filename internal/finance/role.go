// Package finance derives the authorization level the finance module
// applies to a session within a project.
package finance

import "github.com/collabverse/collabverse/internal/repository"

// Role is the finance-module authorization level.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// MembershipLookup reports the project-membership role for an email.
type MembershipLookup func(email string) (string, bool)

// Derive resolves the finance role for an identity. An allow-listed admin
// email is granted owner independent of any stored role, and the
// membership lookup is short-circuited entirely. Otherwise the project
// membership decides; an identity without a membership row is a viewer.
func Derive(email string, isAdminEmail func(string) bool, membership MembershipLookup) Role {
	if isAdminEmail != nil && isAdminEmail(email) {
		return RoleOwner
	}

	if membership == nil {
		return RoleViewer
	}

	role, ok := membership(email)
	if !ok {
		return RoleViewer
	}

	switch role {
	case repository.MemberRoleAdmin:
		return RoleAdmin
	case repository.MemberRoleMember:
		return RoleMember
	default:
		return RoleViewer
	}
}
