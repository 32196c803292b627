package models

import "strings"

// UserSession is the decoded identity attached to every request. It is
// derived from a signed token plus a cached profile; nothing here is
// persisted by the portal itself.
type UserSession struct {
	UserID      string             `json:"user_id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	Role        string             `json:"role"`
	CompanyID   string             `json:"company_id,omitempty"`
	Permissions *RolePermissionSet `json:"permissions,omitempty"`
}

// NormalizeRole lower-cases and trims a role name. Every comparison in the
// permission model goes through this first.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// Normalize canonicalizes the session's role in place and returns the session
// for chaining.
func (s *UserSession) Normalize() *UserSession {
	if s != nil {
		s.Role = NormalizeRole(s.Role)
	}
	return s
}
