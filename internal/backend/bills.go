package backend

import (
	"context"
	"net/http"
	"net/url"
)

// Bill statuses as the backend reports them.
const (
	BillStatusUnpaid  = "Unpaid"
	BillStatusPaid    = "Paid"
	BillStatusOverdue = "Overdue"
)

// Bill is one issued bill.
type Bill struct {
	BillID        int      `json:"billID"`
	ApartmentID   *string  `json:"apartmentID,omitempty"`
	AccountantID  *int     `json:"accountantID,omitempty"`
	CreateDate    *string  `json:"createDate,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	TypeOfBill    *string  `json:"typeOfBill,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Total         *float64 `json:"total,omitempty"`
	Status        string   `json:"status"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
}

// BillCreate is the payload for issuing a bill by hand.
type BillCreate struct {
	ApartmentID  string  `json:"apartmentID"`
	AccountantID int     `json:"accountantID"`
	Deadline     string  `json:"deadline"`
	TypeOfBill   string  `json:"typeOfBill"`
	Amount       float64 `json:"amount"`
	Total        float64 `json:"total"`
}

// MyBills lists the bills of the authenticated resident.
// GET /api/bills/my-bills.
func (c *Client) MyBills(ctx context.Context, token string) ([]Bill, error) {
	var out []Bill
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/bills/my-bills", token: token, out: &out})
	return out, err
}

// CreateBill issues a single bill.
// POST /api/bills/.
func (c *Client) CreateBill(ctx context.Context, token string, req BillCreate) (Bill, error) {
	var out Bill
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/bills/", token: token, body: req, out: &out})
	return out, err
}

// ListBills lists all bills, optionally filtered by apartment and status.
// GET /api/accounting/bills.
func (c *Client) ListBills(ctx context.Context, token, apartmentID, status string) ([]Bill, error) {
	var out []Bill
	q := url.Values{}
	if apartmentID != "" {
		q.Set("apartment_id", apartmentID)
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/accounting/bills"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}
