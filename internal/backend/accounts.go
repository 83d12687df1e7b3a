package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Account is a login account as the backend reports it.
type Account struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// AccountCreate is the payload for creating a new account.
type AccountCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AccountRoleUpdate changes an account's role (administrative action).
type AccountRoleUpdate struct {
	Role string `json:"role"`
}

// AccountPasswordUpdate resets an account's password.
type AccountPasswordUpdate struct {
	NewPassword string `json:"newPassword"`
}

// CreateAccount registers a new login account.
// POST /api/accounts/account.
func (c *Client) CreateAccount(ctx context.Context, token string, req AccountCreate) (Account, error) {
	var out Account
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/accounts/account", token: token, body: req, out: &out})
	return out, err
}

// GetAccount looks up an account by username.
// GET /api/accounts/managers/{username}.
func (c *Client) GetAccount(ctx context.Context, token, username string) (Account, error) {
	var out Account
	path := "/api/accounts/managers/" + url.PathEscape(username)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// DeleteAccount removes an account.
// DELETE /api/accounts/{username}.
func (c *Client) DeleteAccount(ctx context.Context, token, username string) error {
	path := "/api/accounts/" + url.PathEscape(username)
	return c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
}

// UpdateAccountRole changes an account's role.
// PATCH /api/accounts/managers/{username}/role.
func (c *Client) UpdateAccountRole(ctx context.Context, token, username string, req AccountRoleUpdate) (Account, error) {
	var out Account
	path := fmt.Sprintf("/api/accounts/managers/%s/role", url.PathEscape(username))
	err := c.do(ctx, call{method: http.MethodPatch, path: path, token: token, body: req, out: &out})
	return out, err
}

// UpdateAccountPassword resets an account's password.
// PATCH /api/accounts/managers/{username}/password.
func (c *Client) UpdateAccountPassword(ctx context.Context, token, username string, req AccountPasswordUpdate) (Account, error) {
	var out Account
	path := fmt.Sprintf("/api/accounts/managers/%s/password", url.PathEscape(username))
	err := c.do(ctx, call{method: http.MethodPatch, path: path, token: token, body: req, out: &out})
	return out, err
}
