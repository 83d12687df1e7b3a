package backend

import (
	"context"
	"net/http"
)

// MeterReadingCreate records one month's utility readings for an apartment.
type MeterReadingCreate struct {
	ApartmentID string  `json:"apartmentID"`
	Month       string  `json:"month"`
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
}

// ServiceFeeCreate sets a recurring fee rate.
type ServiceFeeCreate struct {
	FeeType string  `json:"feeType"`
	Rate    float64 `json:"rate"`
	Month   string  `json:"month"`
}

// CalculateBillsRequest triggers bill generation for a billing month.
type CalculateBillsRequest struct {
	Month       string `json:"month"`
	DeadlineDay int    `json:"deadline_day"`
}

// CalculateBillsResult summarizes a bill-generation run.
type CalculateBillsResult struct {
	Month        string  `json:"month"`
	BillsCreated int     `json:"billsCreated"`
	TotalAmount  float64 `json:"totalAmount"`
}

// RecordMeterReading stores a monthly meter reading.
// POST /api/accounting/meter-readings.
func (c *Client) RecordMeterReading(ctx context.Context, token string, req MeterReadingCreate) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/accounting/meter-readings", token: token, body: req, out: &out})
	return out, err
}

// SetServiceFee stores a fee rate for a month.
// POST /api/accounting/service-fees.
func (c *Client) SetServiceFee(ctx context.Context, token string, req ServiceFeeCreate) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/accounting/service-fees", token: token, body: req, out: &out})
	return out, err
}

// CalculateBills generates the month's bills from readings and fees.
// POST /api/accounting/bills/calculate.
func (c *Client) CalculateBills(ctx context.Context, token string, req CalculateBillsRequest) (CalculateBillsResult, error) {
	var out CalculateBillsResult
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/accounting/bills/calculate", token: token, body: req, out: &out})
	return out, err
}
