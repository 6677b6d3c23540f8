// Package dispatch maps session state to the screen that should be
// mounted. The mapping is a pure function with no side effects; it is
// re-evaluated whenever the session changes.
package dispatch

import "github.com/ombank/teller/internal/domain"

// ScreenID identifies one of the client's top-level screens.
type ScreenID string

const (
	ScreenLogin    ScreenID = "LOGIN"
	ScreenSignUp   ScreenID = "SIGN_UP"
	ScreenAdmin    ScreenID = "ADMIN"
	ScreenCustomer ScreenID = "CUSTOMER"
)

// Resolve picks the screen for the given session. An unauthenticated
// session lands on login or sign-up, toggled by local UI state; an
// authenticated one lands on the screen for its role.
func Resolve(session domain.Session, signUp bool) ScreenID {
	if !session.Authenticated {
		if signUp {
			return ScreenSignUp
		}
		return ScreenLogin
	}
	if session.Role == domain.RoleAdmin {
		return ScreenAdmin
	}
	return ScreenCustomer
}
