package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ReceiptBillDetail is one bill line on a receipt.
type ReceiptBillDetail struct {
	BillID     int     `json:"billID"`
	TypeOfBill string  `json:"typeOfBill"`
	Total      float64 `json:"total"`
}

// Receipt is the full record of a settled transaction.
type Receipt struct {
	TransID       string              `json:"transID"`
	ApartmentID   *string             `json:"apartmentID,omitempty"`
	PaidBy        *string             `json:"paidBy,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
	PaidAt        string              `json:"paidAt"`
	TotalAmount   float64             `json:"totalAmount"`
	Bills         []ReceiptBillDetail `json:"bills,omitempty"`
}

// GetReceipt fetches the receipt for a transaction.
// GET /api/receipts/{transID}.
func (c *Client) GetReceipt(ctx context.Context, token, transID string) (Receipt, error) {
	var out Receipt
	path := "/api/receipts/" + url.PathEscape(transID)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}
