package domain

// SessionRepository persists the session triple (token, username, role)
// across process restarts. Save replaces the whole triple atomically; an
// observer never sees two of the three fields updated and not the third.
type SessionRepository interface {
	// Load reads the persisted session, if any. A missing persisted
	// session yields an unauthenticated zero session and no error.
	Load() (Session, error)

	// Save persists the full triple as one atomic unit.
	Save(session Session) error

	// Clear removes the persisted triple. Idempotent.
	Clear() error
}
