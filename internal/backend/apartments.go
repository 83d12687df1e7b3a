package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Apartment is one unit in a managed building.
type Apartment struct {
	ApartmentID string   `json:"apartmentID"`
	Area        *float64 `json:"area,omitempty"`
	Status      *string  `json:"status,omitempty"`
	BuildingID  *string  `json:"buildingID,omitempty"`
	NumResident *int     `json:"numResident,omitempty"`
}

// ApartmentCreate is the payload for registering a new apartment.
type ApartmentCreate struct {
	ApartmentID string   `json:"apartmentID"`
	Area        *float64 `json:"area,omitempty"`
	Status      *string  `json:"status,omitempty"`
	BuildingID  *string  `json:"buildingID,omitempty"`
}

// ApartmentUpdate carries partial apartment changes.
type ApartmentUpdate struct {
	Area       *float64 `json:"area,omitempty"`
	Status     *string  `json:"status,omitempty"`
	BuildingID *string  `json:"buildingID,omitempty"`
}

// ListApartments pages through apartments.
// GET /api/apartments/get-apartments-data.
func (c *Client) ListApartments(ctx context.Context, token string, skip, limit int) ([]Apartment, error) {
	var out []Apartment
	path := fmt.Sprintf("/api/apartments/get-apartments-data?skip=%d&limit=%d", skip, limit)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// CreateApartment registers a new apartment.
// POST /api/apartments/add-new-apartment.
func (c *Client) CreateApartment(ctx context.Context, token string, req ApartmentCreate) (Apartment, error) {
	var out Apartment
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/apartments/add-new-apartment", token: token, body: req, out: &out})
	return out, err
}

// UpdateApartment applies partial changes to an apartment.
// PUT /api/apartments/{id}.
func (c *Client) UpdateApartment(ctx context.Context, token, id string, req ApartmentUpdate) (Apartment, error) {
	var out Apartment
	path := "/api/apartments/" + url.PathEscape(id)
	err := c.do(ctx, call{method: http.MethodPut, path: path, token: token, body: req, out: &out})
	return out, err
}

// DeleteApartment removes an apartment.
// DELETE /api/apartments/{id}.
func (c *Client) DeleteApartment(ctx context.Context, token, id string) error {
	path := "/api/apartments/" + url.PathEscape(id)
	return c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
}
