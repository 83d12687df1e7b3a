// Package backendauth implements the Authenticator port on top of the
// BlueMoon backend's auth endpoints.
package backendauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/ports"
)

// Provider translates backend auth responses into port-level results and
// maps backend rejections onto the domain sentinels.
type Provider struct {
	client *backend.Client
}

// New creates a Provider over the given backend client.
func New(client *backend.Client) *Provider {
	return &Provider{client: client}
}

var _ ports.Authenticator = (*Provider)(nil)

// Login exchanges credentials for a bearer token. A 401/403 from the backend
// becomes ErrInvalidCredentials carrying the backend's message; anything else
// passes through as-is.
func (p *Provider) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	resp, err := p.client.Login(ctx, backend.LoginRequest{Username: username, Password: password})
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			return ports.LoginResult{}, fmt.Errorf("%s: %w", apiErr.Detail, domainauth.ErrInvalidCredentials)
		}
		return ports.LoginResult{}, fmt.Errorf("backend login: %w", err)
	}

	return ports.LoginResult{
		Token:    resp.AccessToken,
		Username: resp.Username,
		Role:     resp.Role,
	}, nil
}

// Whoami re-validates a bearer token. Any failure means the token can no
// longer be trusted, so every error wraps ErrSessionExpired.
func (p *Provider) Whoami(ctx context.Context, token string) (ports.Identity, error) {
	resp, err := p.client.Me(ctx, token)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("backend whoami: %v: %w", err, domainauth.ErrSessionExpired)
	}

	return ports.Identity{
		Username: resp.Username,
		Role:     resp.Role,
	}, nil
}
