package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// ApartmentHandlers proxies the apartments tab to the backend.
type ApartmentHandlers struct {
	Backend *backend.Client
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// List pages through apartments.
// GET /api/apartments.
func (h *ApartmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanViewApartments)
	if session == nil {
		return
	}

	skip, limit := ParseSkipLimit(r, defaultPageLimit, maxPageLimit)
	apartments, err := h.Backend.ListApartments(r.Context(), session.Token, skip, limit)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if apartments == nil {
		apartments = []backend.Apartment{}
	}
	WriteJSON(w, http.StatusOK, apartments)
}

// Create registers a new apartment. Creation is a management action, so the
// view capability is not enough.
// POST /api/apartments.
func (h *ApartmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildings)
	if session == nil {
		return
	}

	var req backend.ApartmentCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	apartment, err := h.Backend.CreateApartment(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, apartment)
}

// Update applies partial changes to an apartment.
// PUT /api/apartments/{id}.
func (h *ApartmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildings)
	if session == nil {
		return
	}

	var req backend.ApartmentUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}

	apartment, err := h.Backend.UpdateApartment(r.Context(), session.Token, r.PathValue("id"), req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, apartment)
}

// Delete removes an apartment.
// DELETE /api/apartments/{id}.
func (h *ApartmentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageBuildings)
	if session == nil {
		return
	}

	if err := h.Backend.DeleteApartment(r.Context(), session.Token, r.PathValue("id")); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
