package httpx

import (
	"errors"
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// ResidentHandlers proxies the residents tab to the backend.
type ResidentHandlers struct {
	Backend *backend.Client
}

// List pages through residents.
// GET /api/residents.
func (h *ResidentHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageResidents)
	if session == nil {
		return
	}

	skip, limit := ParseSkipLimit(r, defaultPageLimit, maxPageLimit)
	residents, err := h.Backend.ListResidents(r.Context(), session.Token, skip, limit)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if residents == nil {
		residents = []backend.Resident{}
	}
	WriteJSON(w, http.StatusOK, residents)
}

// Detail looks up one resident by full name and apartment.
// GET /api/residents/detail?fullname=...&apartment_id=...
func (h *ResidentHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageResidents)
	if session == nil {
		return
	}

	fullName := r.URL.Query().Get("fullname")
	apartmentID := r.URL.Query().Get("apartment_id")
	if fullName == "" || apartmentID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("fullname and apartment_id are required"),
		})
		return
	}

	resident, err := h.Backend.ResidentDetail(r.Context(), session.Token, fullName, apartmentID)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resident)
}

// Create registers a new resident.
// POST /api/residents.
func (h *ResidentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageResidents)
	if session == nil {
		return
	}

	var req backend.ResidentCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	resident, err := h.Backend.CreateResident(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, resident)
}

// Update applies partial changes to a resident.
// PUT /api/residents/{id}.
func (h *ResidentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageResidents)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req backend.ResidentUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}

	resident, err := h.Backend.UpdateResident(r.Context(), session.Token, id, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resident)
}

// Delete removes a resident.
// DELETE /api/residents/{id}.
func (h *ResidentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageResidents)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Backend.DeleteResident(r.Context(), session.Token, id); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
