package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Sessions      ports.SessionStore
	SessionTTL    time.Duration
}

// AuthService orchestrates login, session resume, and logout by coordinating
// the backend authenticator and session persistence.
type AuthService struct {
	auth     ports.Authenticator
	sessions ports.SessionStore
	ttl      time.Duration
}

const defaultSessionTTL = 24 * time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		auth:     opts.Authenticator,
		sessions: opts.Sessions,
		ttl:      ttl,
	}
}

// Login exchanges credentials for a backend token and persists a fresh
// session around it. The role string from the backend is parsed here, once;
// an unrecognized role still yields a session (the dashboard resolves it to
// the unsupported-role screen) but never any grants.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domainauth.Session, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		Username:  result.Username,
		Role:      domainauth.ParseRole(result.Role),
		RoleName:  result.Role,
		Token:     result.Token,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// Resume re-validates an existing session against the backend. If the
// backend no longer accepts the token, the session is destroyed and
// ErrSessionExpired is returned; the caller shows the login screen without
// surfacing an error banner.
func (s *AuthService) Resume(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	identity, err := s.auth.Whoami(ctx, session.Token)
	if err != nil {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(err, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, err
	}

	// The backend may have changed the account's role since login; trust
	// its answer over the stored copy.
	if identity.Role != session.RoleName {
		session.Role = domainauth.ParseRole(identity.Role)
		session.RoleName = identity.Role
		if saveErr := s.sessions.Save(ctx, *session); saveErr != nil {
			return nil, fmt.Errorf("save session: %w", saveErr)
		}
	}

	return session, nil
}

// GetSession retrieves a session by ID without contacting the backend.
// Middleware uses this on every request; full backend re-validation is
// reserved for Resume.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, domainauth.ErrSessionExpired
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, domainauth.ErrSessionExpired
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(domainauth.ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, domainauth.ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session. Purely local; the backend token is simply
// abandoned to age out on its own.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
