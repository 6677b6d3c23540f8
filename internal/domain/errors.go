// Error taxonomy for the client. Validation failures never reach the
// network; the other kinds all surface identically as a danger notification
// carrying the underlying message, and none is fatal to the process.
package domain

import "errors"

// ErrSubmissionInFlight is returned when a form submits while its previous
// submission has not completed. The in-flight guard rejects, never queues.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// ValidationError reports a client-side rule failure detected before any
// network call is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// AuthError reports invalid credentials, or a missing/expired token
// rejected by the server.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// RegistrationError reports a failed sign-up, e.g. a username already taken.
type RegistrationError struct {
	Message string
}

func (e *RegistrationError) Error() string { return e.Message }

// RemoteError is any other non-success response from the ledger. The
// message is the server's response body, passed through verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string { return e.Message }

// NetworkError is a transport failure with no response received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// IsAuthError reports whether err is an AuthError anywhere in its chain.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
