package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Building is one managed building.
type Building struct {
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	Address    *string `json:"address,omitempty"`
	ManagerID  *int    `json:"managerID,omitempty"`
}

// BuildingManagerAssign sets or clears a building's manager.
type BuildingManagerAssign struct {
	ManagerID *int `json:"managerID"`
}

// ListBuildings lists all buildings.
// GET /api/buildings/.
func (c *Client) ListBuildings(ctx context.Context, token string) ([]Building, error) {
	var out []Building
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/buildings/", token: token, out: &out})
	return out, err
}

// BuildingsByManager lists the buildings assigned to a manager.
// GET /api/buildings/manager/{id}.
func (c *Client) BuildingsByManager(ctx context.Context, token string, managerID int) ([]Building, error) {
	var out []Building
	path := fmt.Sprintf("/api/buildings/manager/%d", managerID)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// AssignBuildingManager points a building at a new manager.
// PATCH /api/buildings/{id}/manager.
func (c *Client) AssignBuildingManager(ctx context.Context, token, buildingID string, req BuildingManagerAssign) (Building, error) {
	var out Building
	path := fmt.Sprintf("/api/buildings/%s/manager", url.PathEscape(buildingID))
	err := c.do(ctx, call{method: http.MethodPatch, path: path, token: token, body: req, out: &out})
	return out, err
}
