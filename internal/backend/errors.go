package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx backend response. Detail carries the backend's
// `{"detail": ...}` payload when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// Unauthorized reports whether the backend rejected the request's
// credentials or token.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

func decodeAPIError(status int, raw []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Detail == "" {
		payload.Detail = "An error occurred"
	}
	return &APIError{Status: status, Detail: payload.Detail}
}
