package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// AccountHandlers proxies login-account administration to the backend.
type AccountHandlers struct {
	Backend *backend.Client
}

// Create registers a new login account.
// POST /api/accounts.
func (h *AccountHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccounts)
	if session == nil {
		return
	}

	var req backend.AccountCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	account, err := h.Backend.CreateAccount(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, account)
}

// Get looks up an account by username.
// GET /api/accounts/{username}.
func (h *AccountHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccounts)
	if session == nil {
		return
	}

	account, err := h.Backend.GetAccount(r.Context(), session.Token, r.PathValue("username"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, account)
}

// Delete removes an account.
// DELETE /api/accounts/{username}.
func (h *AccountHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccounts)
	if session == nil {
		return
	}

	if err := h.Backend.DeleteAccount(r.Context(), session.Token, r.PathValue("username")); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateRole changes an account's role.
// PATCH /api/accounts/{username}/role.
func (h *AccountHandlers) UpdateRole(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccounts)
	if session == nil {
		return
	}

	var req backend.AccountRoleUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}

	account, err := h.Backend.UpdateAccountRole(r.Context(), session.Token, r.PathValue("username"), req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, account)
}

// UpdatePassword resets an account's password.
// PATCH /api/accounts/{username}/password.
func (h *AccountHandlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageAccounts)
	if session == nil {
		return
	}

	var req backend.AccountPasswordUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}

	account, err := h.Backend.UpdateAccountPassword(r.Context(), session.Token, r.PathValue("username"), req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, account)
}
