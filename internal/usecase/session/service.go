// Package session owns the authenticated identity and its persisted
// representation. It is the only writer of process-wide session state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ombank/teller/internal/domain"
)

// AuthAPI is the slice of the banking API this service consumes.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, username, password string) (*domain.AuthResult, error)
}

// Service manages the session lifecycle: restore at startup, login or
// registration, and clear on logout. The role it holds is taken verbatim
// from the server's response and gates UI navigation only; authorization
// of every call remains the server's job.
type Service struct {
	api    AuthAPI
	repo   domain.SessionRepository
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.Session
}

// NewService creates a new session Service.
func NewService(api AuthAPI, repo domain.SessionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:    api,
		repo:   repo,
		logger: logger,
	}
}

// Login authenticates with the server. On success the triple is persisted
// as one atomic unit before the in-memory session is replaced. Any failure
// surfaces as a *domain.AuthError carrying the underlying message.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		if domain.IsAuthError(err) {
			return domain.Session{}, err
		}
		return domain.Session{}, &domain.AuthError{Message: err.Error()}
	}
	return s.establish(username, result)
}

// Register signs up a new user. The contract is identical to Login,
// including immediate authentication, except failures surface as
// *domain.RegistrationError.
func (s *Service) Register(ctx context.Context, username, password string) (domain.Session, error) {
	result, err := s.api.Register(ctx, username, password)
	if err != nil {
		return domain.Session{}, &domain.RegistrationError{Message: err.Error()}
	}
	return s.establish(username, result)
}

// establish persists and installs the session for a successful auth
// response.
func (s *Service) establish(username string, result *domain.AuthResult) (domain.Session, error) {
	sess := domain.Session{
		Token:         result.Token,
		Username:      username,
		Role:          domain.RoleFromAdminFlag(result.IsAdmin),
		Authenticated: true,
	}
	if err := sess.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("server returned an unusable session: %w", err)
	}

	if err := s.repo.Save(sess); err != nil {
		return domain.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("session established", "username", sess.Username, "role", sess.Role)
	return sess, nil
}

// Restore reconstructs the session from persisted storage. It runs once at
// process start, never contacts the server, and yields an unauthenticated
// session when nothing usable is stored.
func (s *Service) Restore() domain.Session {
	sess, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("failed to restore session", "error", err)
		sess = domain.Session{}
	}
	if err := sess.Validate(); err != nil {
		s.logger.Warn("discarding invalid persisted session", "error", err)
		sess = domain.Session{}
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess
}

// Logout clears the persisted triple and the in-memory session. It is
// idempotent and has no failure mode; a storage error is logged and
// otherwise ignored.
func (s *Service) Logout() {
	if err := s.repo.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted session", "error", err)
	}

	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()
}

// Current returns the session as of now.
func (s *Service) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// InvalidateIfAuthError logs the session out when err reports an invalid
// or expired token, and says whether it did so. Callers run every surfaced
// error through this so a dead token cannot linger.
func (s *Service) InvalidateIfAuthError(err error) bool {
	if err == nil || !domain.IsAuthError(err) {
		return false
	}
	if !s.Current().Authenticated {
		return false
	}

	s.logger.Info("session invalidated by server auth failure")
	s.Logout()
	return true
}
