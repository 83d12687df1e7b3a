package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// BuildingHandlers proxies the buildings tab to the backend.
type BuildingHandlers struct {
	Backend *backend.Client
}

// List lists all buildings.
// GET /api/buildings.
func (h *BuildingHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildings)
	if session == nil {
		return
	}

	buildings, err := h.Backend.ListBuildings(r.Context(), session.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if buildings == nil {
		buildings = []backend.Building{}
	}
	WriteJSON(w, http.StatusOK, buildings)
}

// ByManager lists the buildings assigned to a manager.
// GET /api/buildings/manager/{id}.
func (h *BuildingHandlers) ByManager(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildings)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	buildings, err := h.Backend.BuildingsByManager(r.Context(), session.Token, id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if buildings == nil {
		buildings = []backend.Building{}
	}
	WriteJSON(w, http.StatusOK, buildings)
}

// AssignManager points a building at a new manager.
// PATCH /api/buildings/{id}/manager.
func (h *BuildingHandlers) AssignManager(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildings)
	if session == nil {
		return
	}

	var req backend.BuildingManagerAssign
	if !DecodeJSON(w, r, &req) {
		return
	}

	building, err := h.Backend.AssignBuildingManager(r.Context(), session.Token, r.PathValue("id"), req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, building)
}
