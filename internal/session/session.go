package session

import "time"

// Role is the authorization level stored in a demo session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the allowed literals.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session is an authenticated demo identity. IssuedAt is recorded in Unix
// epoch milliseconds at encode time.
type Session struct {
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IssuedAt int64  `json:"issuedAt"`
}

// New creates a session for the given identity, stamped with the current time.
func New(email string, role Role) Session {
	return Session{
		Email:    email,
		Role:     role,
		IssuedAt: time.Now().UnixMilli(),
	}
}

// IssuedTime returns the issuance timestamp as a time.Time.
func (s Session) IssuedTime() time.Time {
	return time.UnixMilli(s.IssuedAt)
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
