package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// BillHandlers proxies the bills views to the backend.
type BillHandlers struct {
	Backend *backend.Client
}

// MyBills lists the bills of the authenticated resident.
// GET /api/bills/my-bills.
func (h *BillHandlers) MyBills(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanViewMyBills)
	if session == nil {
		return
	}

	bills, err := h.Backend.MyBills(r.Context(), session.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if bills == nil {
		bills = []backend.Bill{}
	}
	WriteJSON(w, http.StatusOK, bills)
}

// List lists all bills with optional apartment and status filters.
// GET /api/bills?apartment_id=...&status=...
func (h *BillHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageOfflinePayments)
	if session == nil {
		return
	}

	q := r.URL.Query()
	bills, err := h.Backend.ListBills(r.Context(), session.Token, q.Get("apartment_id"), q.Get("status"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if bills == nil {
		bills = []backend.Bill{}
	}
	WriteJSON(w, http.StatusOK, bills)
}

// Create issues a single bill by hand.
// POST /api/bills.
func (h *BillHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageOfflinePayments)
	if session == nil {
		return
	}

	var req backend.BillCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	bill, err := h.Backend.CreateBill(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, bill)
}
