package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of roles the backend may assign to a user.
// The wire values are Spanish because the backend predates this module.
type Role string

const (
	RoleAdministrator Role = "administrador"
	RoleConsultant    Role = "consultor"
)

// ParseRole converts an untrusted role string into a Role. Anything outside
// the closed set is rejected; a login must never default to a role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleConsultant:
		return Role(s), nil
	}
	return "", fmt.Errorf("role %q: %w", s, ErrInvalidRole)
}

// ID returns the legacy integer encoding of the role, kept for consumers that
// still compare on roleId. 0 means unknown and never appears on a valid user.
func (r Role) ID() int {
	switch r {
	case RoleAdministrator:
		return 2
	case RoleConsultant:
		return 1
	}
	return 0
}

// AuthSource records which authentication path produced a user.
type AuthSource string

const (
	SourceBackend AuthSource = "backend"
	SourceDemo    AuthSource = "demo"
)

// AuthenticatedUser is one logged-in identity. Instances are built fresh on
// every successful login and never mutated afterwards.
type AuthenticatedUser struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	RoleID      int        `json:"roleId"`
	Token       string     `json:"token"`
	LastLoginAt time.Time  `json:"lastLoginTimestamp,omitzero"`
	AuthSource  AuthSource `json:"authSource"`
}

// IsDemo reports whether the user was authenticated against the compiled-in
// demo credential table rather than the backend.
func (u *AuthenticatedUser) IsDemo() bool {
	return u != nil && u.AuthSource == SourceDemo
}

// AuthSourceLabel returns the display label for a user's authentication
// source, or "" when no user is present.
func AuthSourceLabel(u *AuthenticatedUser) string {
	switch {
	case u == nil:
		return ""
	case u.AuthSource == SourceDemo:
		return "Demo Mode"
	default:
		return "Backend"
	}
}
