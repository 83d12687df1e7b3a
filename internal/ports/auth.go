package ports

// Package ports defines interfaces (hexagonal ports) for auth-related
// behavior. Implementations live in internal/adapters and internal/backend;
// orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get when no session exists
// for the given ID.
var ErrSessionNotFound = errors.New("session not found")

// LoginResult is the outcome of a successful credential exchange with the
// backend. Role is the raw string as reported; validation happens at the
// session-creation boundary, not here.
type LoginResult struct {
	Token    string
	Username string
	Role     string
}

// Identity is the principal a bearer token resolves to.
type Identity struct {
	Username string
	Role     string
}

// Authenticator exchanges credentials for a bearer token and re-validates
// previously issued tokens against the backend.
type Authenticator interface {
	// Login exchanges username/password for a token. A rejected login
	// returns an error wrapping domainauth.ErrInvalidCredentials carrying
	// the backend's message.
	Login(ctx context.Context, username, password string) (LoginResult, error)

	// Whoami resolves a bearer token to its identity. An invalid or expired
	// token returns an error wrapping domainauth.ErrSessionExpired.
	Whoami(ctx context.Context, token string) (Identity, error)
}

// SessionStore persists and retrieves user sessions. Get returns
// ErrSessionNotFound when the ID resolves to nothing.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
