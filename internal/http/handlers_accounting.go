package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// AccountingHandlers proxies the monthly accounting workflow: record meter
// readings, set fee rates, then generate the month's bills.
type AccountingHandlers struct {
	Backend *backend.Client
}

// RecordMeterReading stores a monthly meter reading.
// POST /api/accounting/meter-readings.
func (h *AccountingHandlers) RecordMeterReading(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageOfflinePayments)
	if session == nil {
		return
	}

	var req backend.MeterReadingCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Backend.RecordMeterReading(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, resp)
}

// SetServiceFee stores a fee rate for a month.
// POST /api/accounting/service-fees.
func (h *AccountingHandlers) SetServiceFee(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageOfflinePayments)
	if session == nil {
		return
	}

	var req backend.ServiceFeeCreate
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Backend.SetServiceFee(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, resp)
}

// CalculateBills generates the month's bills from readings and fees.
// POST /api/accounting/bills/calculate.
func (h *AccountingHandlers) CalculateBills(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanManageOfflinePayments)
	if session == nil {
		return
	}

	var req backend.CalculateBillsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Backend.CalculateBills(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, result)
}
