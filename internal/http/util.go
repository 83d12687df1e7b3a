package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// sessionWithCapability fetches the session from context and re-checks the
// capability inside the handler, independent of the route middleware. Returns
// nil after writing the error response when the check fails.
func sessionWithCapability(w http.ResponseWriter, r *http.Request, c perm.Capability) *domainauth.Session {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return nil
	}
	if !perm.Allowed(c, session.Role) {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "access_denied",
			Err:     errors.New("access denied"),
		})
		return nil
	}
	return session
}

// requireSession fetches the session from context for endpoints gated only
// on authentication, not on a capability.
func requireSession(w http.ResponseWriter, r *http.Request) *domainauth.Session {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return nil
	}
	return session
}

// writeBackendError translates a backend call failure into a client
// response. Backend rejections pass through with their status and detail;
// transport failures collapse to 502.
func writeBackendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		WriteError(w, ErrorParams{
			Code:    apiErr.Status,
			ErrCode: "backend_error",
			Err:     errors.New(apiErr.Detail),
		})
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusBadGateway,
		ErrCode: "backend_unreachable",
		Err:     errors.New("backend unreachable"),
	})
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseSkipLimit parses the backend's pagination params and clamps to sane
// bounds.
func ParseSkipLimit(r *http.Request, defLimit, maxLimit int) (int, int) {
	if maxLimit < 1 {
		maxLimit = 1
	}

	skip := parseIntQuery(r, "skip", 0)
	lim := parseIntQuery(r, "limit", defLimit)
	if skip < 0 {
		skip = 0
	}
	if lim < 1 {
		lim = 1
	}
	if lim > maxLimit {
		lim = maxLimit
	}
	return skip, lim
}

// pathInt parses a numeric path segment, writing a 400 and returning false
// when it isn't a number.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.PathValue(name)
	i, err := strconv.Atoi(v)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New(name + " must be a number"),
		})
		return 0, false
	}
	return i, true
}
