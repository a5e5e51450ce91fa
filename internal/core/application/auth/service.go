// Package auth keeps signed-in sessions. Credentials are checked by a
// ports.CredentialVerifier, so the identity source can be swapped without touching
// the HTTP layer.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// DefaultSessionTTL is used when NewService gets a non-positive TTL.
const DefaultSessionTTL = 12 * time.Hour

// ErrSessionNotFound covers unknown, expired and logged-out tokens alike.
var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	Token     string
	User      user.User
	ExpiresAt time.Time
}

// Service issues opaque bearer tokens and resolves them back to the signed-in user.
// Sessions live in process memory and are lost on restart.
type Service struct {
	verifier ports.CredentialVerifier
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(verifier ports.CredentialVerifier, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Service{
		verifier: verifier,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies the credentials and opens a session. Wrong credentials fail with
// ports.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := errs.NewValidationError("credentials", errors.Join(
		required("email", email),
		required("password", password),
	)); err != nil {
		return Session{}, err
	}

	u, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	if err := u.Validate(); err != nil {
		return Session{}, err
	}

	now := s.now()
	session := Session{
		Token:     kernel.NewUUID().String(),
		User:      u,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpired(now)
	s.sessions[session.Token] = session
	return session, nil
}

// Logout ends the session. Unknown tokens are ignored.
func (s *Service) Logout(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *Service) Resolve(_ context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *Service) purgeExpired(now time.Time) {
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

func required(field, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}
