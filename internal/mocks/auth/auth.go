package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*MockAuthenticator)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
)

// MockAuthenticator simulates the backend auth endpoints for tests.
type MockAuthenticator struct {
	LoginFunc  func(ctx context.Context, username, password string) (ports.LoginResult, error)
	WhoamiFunc func(ctx context.Context, token string) (ports.Identity, error)

	// Defaults used when the func fields are nil.
	Token string
	Role  string
}

// NewMockAuthenticator creates a MockAuthenticator with sensible defaults.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{
		Token: "mock-token",
		Role:  string(domainauth.RoleResident),
	}
}

func (m *MockAuthenticator) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return ports.LoginResult{
		Token:    m.Token,
		Username: username,
		Role:     m.Role,
	}, nil
}

func (m *MockAuthenticator) Whoami(ctx context.Context, token string) (ports.Identity, error) {
	if m.WhoamiFunc != nil {
		return m.WhoamiFunc(ctx, token)
	}
	if token != m.Token {
		return ports.Identity{}, domainauth.ErrSessionExpired
	}
	return ports.Identity{Username: "mock-user", Role: m.Role}, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if id == "" || !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
