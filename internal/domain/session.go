package domain

import "errors"

// Role partitions the authenticated surface. It only selects which screens
// and menus render; authorization is enforced server-side on every request.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// RoleFromAdminFlag maps the server's isAdmin flag onto a Role.
func RoleFromAdminFlag(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

// Session is the authenticated identity of the current user. The zero value
// is a valid unauthenticated session.
type Session struct {
	Token         string
	Username      string
	Role          Role
	Authenticated bool
}

// Validate ensures an authenticated session carries a token and a defined
// role. Unauthenticated sessions are always valid.
func (s *Session) Validate() error {
	if !s.Authenticated {
		return nil
	}
	if s.Token == "" {
		return errors.New("authenticated session requires a token")
	}
	if s.Role != RoleCustomer && s.Role != RoleAdmin {
		return errors.New("authenticated session requires a defined role")
	}
	return nil
}
