package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// QRCode is a generated payment QR with its expiry window.
type QRCode struct {
	QRCodeURL  string  `json:"qrCodeUrl"`
	PaymentRef string  `json:"paymentRef"`
	Amount     float64 `json:"amount"`
	ExpiresAt  string  `json:"expiresAt"`
}

// QRCreateRequest asks the backend to mint a QR for a set of bills.
type QRCreateRequest struct {
	BillIDs []int `json:"bill_ids"`
}

// PaymentTransaction is one completed payment in a resident's history.
type PaymentTransaction struct {
	TransID       string  `json:"transID"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	PaidAt        string  `json:"paidAt"`
	BillIDs       []int   `json:"bill_ids,omitempty"`
}

// PaymentResult is the backend's summary after bills are settled.
type PaymentResult struct {
	TransID     string  `json:"transID"`
	TotalAmount float64 `json:"totalAmount"`
	BillsPaid   int     `json:"billsPaid"`
}

// OfflinePaymentRequest records a cash payment against a set of bills.
type OfflinePaymentRequest struct {
	BillIDs []int `json:"bill_ids"`
}

// CreateQRPayment mints a payment QR for the given bills.
// POST /api/payments/create-qr.
func (c *Client) CreateQRPayment(ctx context.Context, token string, req QRCreateRequest) (QRCode, error) {
	var out QRCode
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/payments/create-qr", token: token, body: req, out: &out})
	return out, err
}

// CheckPaymentExpiry polls the status of a pending QR payment. The
// backend's answer varies by state, so the raw document is returned.
// POST /api/payments/check-expiry.
func (c *Client) CheckPaymentExpiry(ctx context.Context, token, paymentRef string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]string{"paymentRef": paymentRef}
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/payments/check-expiry", token: token, body: body, out: &out})
	return out, err
}

// MyPaymentHistory lists the authenticated resident's past payments.
// GET /api/payments/my-history.
func (c *Client) MyPaymentHistory(ctx context.Context, token string) ([]PaymentTransaction, error) {
	var out []PaymentTransaction
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/payments/my-history", token: token, out: &out})
	return out, err
}

// CreateOfflinePayment records a cash payment for a set of bills.
// POST /api/offline-payments/offline_payment.
func (c *Client) CreateOfflinePayment(ctx context.Context, token string, req OfflinePaymentRequest) (PaymentResult, error) {
	var out PaymentResult
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/offline-payments/offline_payment", token: token, body: req, out: &out})
	return out, err
}
