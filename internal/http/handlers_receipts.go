package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// ReceiptHandlers proxies receipt lookups to the backend.
type ReceiptHandlers struct {
	Backend *backend.Client
}

// Get fetches the receipt for a settled transaction.
// GET /api/receipts/{transID}.
func (h *ReceiptHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanViewReceipts)
	if session == nil {
		return
	}

	receipt, err := h.Backend.GetReceipt(r.Context(), session.Token, r.PathValue("transID"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, receipt)
}
