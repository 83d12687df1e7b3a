package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// StaffHandlers proxies the building-managers and accountants tabs. The two
// directories share a wire shape, so one handler set covers both with the
// capability and backend calls switched per resource.

// BuildingManagerHandlers proxies building-manager administration.
type BuildingManagerHandlers struct {
	Backend *backend.Client
}

// List lists all building managers.
// GET /api/building-managers.
func (h *BuildingManagerHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildingManagers)
	if session == nil {
		return
	}

	managers, err := h.Backend.ListBuildingManagers(r.Context(), session.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if managers == nil {
		managers = []backend.BuildingManager{}
	}
	WriteJSON(w, http.StatusOK, managers)
}

// Get looks up one building manager.
// GET /api/building-managers/{id}.
func (h *BuildingManagerHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildingManagers)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	manager, err := h.Backend.GetBuildingManager(r.Context(), session.Token, id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, manager)
}

// Create adds a building manager.
// POST /api/building-managers.
func (h *BuildingManagerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildingManagers)
	if session == nil {
		return
	}

	var req backend.StaffCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	manager, err := h.Backend.CreateBuildingManager(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, manager)
}

// Update applies partial changes to a building manager.
// PATCH /api/building-managers/{id}.
func (h *BuildingManagerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildingManagers)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req backend.StaffUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}

	manager, err := h.Backend.UpdateBuildingManager(r.Context(), session.Token, id, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, manager)
}

// Delete removes a building manager.
// DELETE /api/building-managers/{id}.
func (h *BuildingManagerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildingManagers)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Backend.DeleteBuildingManager(r.Context(), session.Token, id); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AccountantHandlers proxies accountant administration.
type AccountantHandlers struct {
	Backend *backend.Client
}

// List lists all accountants.
// GET /api/accountants.
func (h *AccountantHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccountants)
	if session == nil {
		return
	}

	accountants, err := h.Backend.ListAccountants(r.Context(), session.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if accountants == nil {
		accountants = []backend.Accountant{}
	}
	WriteJSON(w, http.StatusOK, accountants)
}

// Get looks up one accountant.
// GET /api/accountants/{id}.
func (h *AccountantHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccountants)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	accountant, err := h.Backend.GetAccountant(r.Context(), session.Token, id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, accountant)
}

// Create adds an accountant.
// POST /api/accountants.
func (h *AccountantHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccountants)
	if session == nil {
		return
	}

	var req backend.StaffCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	accountant, err := h.Backend.CreateAccountant(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, accountant)
}

// Update applies partial changes to an accountant.
// PATCH /api/accountants/{id}.
func (h *AccountantHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccountants)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req backend.StaffUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}

	accountant, err := h.Backend.UpdateAccountant(r.Context(), session.Token, id, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, accountant)
}

// Delete removes an accountant.
// DELETE /api/accountants/{id}.
func (h *AccountantHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccountants)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Backend.DeleteAccountant(r.Context(), session.Token, id); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
