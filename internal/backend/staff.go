package backend

// Staff directory endpoints: building managers and accountants share the
// same CRUD shape on the wire.

import (
	"context"
	"fmt"
	"net/http"
)

// BuildingManager is one member of the building-management staff.
type BuildingManager struct {
	ManagerID   int     `json:"managerID"`
	FullName    string  `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// StaffCreate is the shared payload for adding a manager or accountant.
type StaffCreate struct {
	FullName    string  `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// StaffUpdate is the shared partial-update payload.
type StaffUpdate struct {
	FullName    *string `json:"fullName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// Accountant is one member of the accounting staff.
type Accountant struct {
	AccountantID int     `json:"accountantID"`
	FullName     string  `json:"fullName"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	Email        *string `json:"email,omitempty"`
	Username     *string `json:"username,omitempty"`
}

// ListBuildingManagers lists all building managers.
// GET /api/building-managers/.
func (c *Client) ListBuildingManagers(ctx context.Context, token string) ([]BuildingManager, error) {
	var out []BuildingManager
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/building-managers/", token: token, out: &out})
	return out, err
}

// GetBuildingManager looks up a building manager by ID.
// GET /api/building-managers/{id}.
func (c *Client) GetBuildingManager(ctx context.Context, token string, id int) (BuildingManager, error) {
	var out BuildingManager
	path := fmt.Sprintf("/api/building-managers/%d", id)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// CreateBuildingManager adds a building manager.
// POST /api/building-managers/.
func (c *Client) CreateBuildingManager(ctx context.Context, token string, req StaffCreate) (BuildingManager, error) {
	var out BuildingManager
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/building-managers/", token: token, body: req, out: &out})
	return out, err
}

// UpdateBuildingManager applies partial changes to a building manager.
// PATCH /api/building-managers/{id}.
func (c *Client) UpdateBuildingManager(ctx context.Context, token string, id int, req StaffUpdate) (BuildingManager, error) {
	var out BuildingManager
	path := fmt.Sprintf("/api/building-managers/%d", id)
	err := c.do(ctx, call{method: http.MethodPatch, path: path, token: token, body: req, out: &out})
	return out, err
}

// DeleteBuildingManager removes a building manager.
// DELETE /api/building-managers/{id}.
func (c *Client) DeleteBuildingManager(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/api/building-managers/%d", id)
	return c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
}

// ListAccountants lists all accountants.
// GET /api/accountants/.
func (c *Client) ListAccountants(ctx context.Context, token string) ([]Accountant, error) {
	var out []Accountant
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/accountants/", token: token, out: &out})
	return out, err
}

// GetAccountant looks up an accountant by ID.
// GET /api/accountants/{id}.
func (c *Client) GetAccountant(ctx context.Context, token string, id int) (Accountant, error) {
	var out Accountant
	path := fmt.Sprintf("/api/accountants/%d", id)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// CreateAccountant adds an accountant.
// POST /api/accountants/.
func (c *Client) CreateAccountant(ctx context.Context, token string, req StaffCreate) (Accountant, error) {
	var out Accountant
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/accountants/", token: token, body: req, out: &out})
	return out, err
}

// UpdateAccountant applies partial changes to an accountant.
// PATCH /api/accountants/{id}.
func (c *Client) UpdateAccountant(ctx context.Context, token string, id int, req StaffUpdate) (Accountant, error) {
	var out Accountant
	path := fmt.Sprintf("/api/accountants/%d", id)
	err := c.do(ctx, call{method: http.MethodPatch, path: path, token: token, body: req, out: &out})
	return out, err
}

// DeleteAccountant removes an accountant.
// DELETE /api/accountants/{id}.
func (c *Client) DeleteAccountant(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/api/accountants/%d", id)
	return c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
}
