// Package backend is a typed client for the BlueMoon property-management
// REST API. One method per endpoint; a shared request helper attaches the
// caller's bearer token and normalizes non-2xx responses into *APIError.
// The backend owns all persistence and computation (billing, payment
// gateway, PDF rendering); this package only speaks its wire contract.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultTimeout = 10 * time.Second

// Config controls construction of a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout bounds each attempt. Zero means the 10s default.
	Timeout time.Duration
	// RetryMax is the retry budget for idempotent requests. Mutating
	// requests are never retried regardless of this value.
	RetryMax int
}

// Client wraps HTTP access to the backend. Reads go through a retrying
// client; mutations (payments especially) use a plain client so a transient
// failure can never double-submit.
type Client struct {
	reads   *retryablehttp.Client
	writes  *http.Client
	baseURL string
}

// NewClient constructs a Client from Config.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	reads := retryablehttp.NewClient()
	reads.RetryMax = cfg.RetryMax
	reads.HTTPClient.Timeout = timeout
	reads.Logger = nil

	return &Client{
		reads:   reads,
		writes:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// call groups the parameters of a single backend request.
type call struct {
	method string
	path   string // including any query string
	token  string // empty for unauthenticated endpoints (login)
	body   any    // JSON-marshaled when non-nil
	out    any    // JSON-unmarshaled into when non-nil and response has a body
}

func (c *Client) do(ctx context.Context, cl call) error {
	var payload []byte
	if cl.body != nil {
		var err error
		payload, err = json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.send(ctx, cl, payload)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if cl.out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}

	if rm, ok := cl.out.(*json.RawMessage); ok {
		*rm = append((*rm)[:0], raw...)
		return nil
	}
	if err := json.Unmarshal(raw, cl.out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send dispatches on the method: GET/HEAD through the retrying client,
// everything else through the plain one.
func (c *Client) send(ctx context.Context, cl call, payload []byte) (*http.Response, error) {
	url := c.baseURL + cl.path

	if cl.method == http.MethodGet || cl.method == http.MethodHead {
		req, err := retryablehttp.NewRequestWithContext(ctx, cl.method, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		setHeaders(req.Header, cl.token)
		return c.reads.Do(req)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	setHeaders(req.Header, cl.token)
	return c.writes.Do(req)
}

// Raw performs a GET and returns the undecoded response body. Callers that
// project over backend JSON (dashboard summaries) use this instead of the
// typed accessors.
func (c *Client) Raw(ctx context.Context, token, path string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

func setHeaders(h http.Header, token string) {
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
}
