package httpx

import (
	"errors"
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// PaymentHandlers proxies the payments tab (QR and offline) to the backend.
type PaymentHandlers struct {
	Backend *backend.Client
}

// CreateQR mints a payment QR for a set of bills.
// POST /api/payments/qr.
func (h *PaymentHandlers) CreateQR(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanCreateQRPayment)
	if session == nil {
		return
	}

	var req backend.QRCreateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.BillIDs) == 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("bill_ids must not be empty"),
		})
		return
	}

	qr, err := h.Backend.CreateQRPayment(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, qr)
}

// CheckExpiry polls the state of a pending QR payment. The backend's answer
// varies by state, so its document passes through untouched.
// POST /api/payments/qr/check.
func (h *PaymentHandlers) CheckExpiry(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanCreateQRPayment)
	if session == nil {
		return
	}

	var req struct {
		PaymentRef string `json:"paymentRef"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.PaymentRef == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("paymentRef is required"),
		})
		return
	}

	raw, err := h.Backend.CheckPaymentExpiry(r.Context(), session.Token, req.PaymentRef)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		return
	}
}

// History lists the authenticated resident's past payments.
// GET /api/payments/history.
func (h *PaymentHandlers) History(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanViewMyPayments)
	if session == nil {
		return
	}

	history, err := h.Backend.MyPaymentHistory(r.Context(), session.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if history == nil {
		history = []backend.PaymentTransaction{}
	}
	WriteJSON(w, http.StatusOK, history)
}

// CreateOffline records a cash payment for a set of bills.
// POST /api/offline-payments.
func (h *PaymentHandlers) CreateOffline(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageOfflinePayments)
	if session == nil {
		return
	}

	var req backend.OfflinePaymentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.BillIDs) == 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("bill_ids must not be empty"),
		})
		return
	}

	result, err := h.Backend.CreateOfflinePayment(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, result)
}
