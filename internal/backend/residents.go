package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Resident is one registered resident, optionally linked to an apartment
// and a login account.
type Resident struct {
	ResidentID  int     `json:"residentID"`
	ApartmentID *string `json:"apartmentID,omitempty"`
	FullName    string  `json:"fullName"`
	Age         *int    `json:"age,omitempty"`
	Date        *string `json:"date,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	IsOwner     bool    `json:"isOwner"`
	Username    *string `json:"username,omitempty"`
}

// ResidentCreate is the payload for registering a new resident.
type ResidentCreate struct {
	ApartmentID *string `json:"apartmentID,omitempty"`
	FullName    string  `json:"fullName"`
	Age         *int    `json:"age,omitempty"`
	Date        *string `json:"date,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	IsOwner     bool    `json:"isOwner"`
	Username    *string `json:"username,omitempty"`
}

// ResidentUpdate carries partial resident changes.
type ResidentUpdate struct {
	ApartmentID *string `json:"apartmentID,omitempty"`
	FullName    *string `json:"fullName,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Date        *string `json:"date,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	IsOwner     *bool   `json:"isOwner,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// ListResidents pages through residents.
// GET /api/residents/get-residents-data.
func (c *Client) ListResidents(ctx context.Context, token string, skip, limit int) ([]Resident, error) {
	var out []Resident
	path := fmt.Sprintf("/api/residents/get-residents-data?skip=%d&limit=%d", skip, limit)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// ResidentDetail looks up one resident by full name and apartment.
// GET /api/residents/resident_detail.
func (c *Client) ResidentDetail(ctx context.Context, token, fullName, apartmentID string) (Resident, error) {
	var out Resident
	q := url.Values{}
	q.Set("fullname", fullName)
	q.Set("apartment_id", apartmentID)
	path := "/api/residents/resident_detail?" + q.Encode()
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// CreateResident registers a new resident.
// POST /api/residents/add-new-resident.
func (c *Client) CreateResident(ctx context.Context, token string, req ResidentCreate) (Resident, error) {
	var out Resident
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/residents/add-new-resident", token: token, body: req, out: &out})
	return out, err
}

// UpdateResident applies partial changes to a resident.
// PUT /api/residents/{id}.
func (c *Client) UpdateResident(ctx context.Context, token string, id int, req ResidentUpdate) (Resident, error) {
	var out Resident
	path := fmt.Sprintf("/api/residents/%d", id)
	err := c.do(ctx, call{method: http.MethodPut, path: path, token: token, body: req, out: &out})
	return out, err
}

// DeleteResident removes a resident.
// DELETE /api/residents/{id}.
func (c *Client) DeleteResident(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/api/residents/%d", id)
	return c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
}
