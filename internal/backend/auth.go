package backend

import (
	"context"
	"net/http"
)

// LoginRequest carries credentials for the token exchange.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// MeResponse resolves a bearer token to its principal.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token.
// POST /api/auth/login.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/auth/login", body: req, out: &out})
	return out, err
}

// Me validates a bearer token and returns the principal it belongs to.
// GET /api/auth/me.
func (c *Client) Me(ctx context.Context, token string) (MeResponse, error) {
	var out MeResponse
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/auth/me", token: token, out: &out})
	return out, err
}
