package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// SessionCookieName is the cookie carrying the opaque session ID.
const SessionCookieName = "session_id"

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*domainauth.Session, error)
	Resume(ctx context.Context, sessionID string) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger

	validateOnce sync.Once
	validate     *validator.Validate
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// validator builds the shared validator exactly once. One AuthHandlers value
// serves every request, so the init must be safe under concurrent logins.
func (h *AuthHandlers) validator() *validator.Validate {
	h.validateOnce.Do(func() {
		h.validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return h.validate
}

// loginRequest is the login form payload.
type loginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=128"`
	Password string `json:"password" validate:"required,min=1,max=256"`
}

// sessionResponse is the session view returned by login and /auth/me.
// Capabilities lets the browser shell gate its controls without re-deriving
// the role matrix client-side.
type sessionResponse struct {
	Username     string            `json:"username"`
	Role         string            `json:"role"`
	Supported    bool              `json:"supported"`
	Capabilities []perm.Capability `json:"capabilities"`
	ExpiresAt    time.Time         `json:"expiresAt"`
}

func newSessionResponse(s *domainauth.Session) sessionResponse {
	return sessionResponse{
		Username:     s.Username,
		Role:         s.RoleName,
		Supported:    s.Role.Known(),
		Capabilities: perm.Capabilities(s.Role),
		ExpiresAt:    s.ExpiresAt,
	}
}

// Login handles the credential login endpoint.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.validator().Struct(req); err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("username and password are required"),
		})
		return
	}

	session, err := h.Svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainauth.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     err,
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "login failed", slog.Any("error", err))
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "backend_error",
			Err:     errors.New("login is temporarily unavailable"),
		})
		return
	}

	h.setSessionCookie(w, r, *session)
	WriteJSON(w, http.StatusOK, newSessionResponse(session))
}

// Me re-validates the current session against the backend and returns the
// session view. An expired or missing session answers 401 with the cookie
// cleared; the client treats that as "show the login screen", not an error.
// GET /api/auth/me.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		h.writeSessionExpired(w, r)
		return
	}

	session, err := h.Svc.Resume(r.Context(), sessionCookie.Value)
	if err != nil {
		if !errors.Is(err, domainauth.ErrSessionExpired) {
			h.logger().ErrorContext(r.Context(), "session resume failed", slog.Any("error", err))
		}
		h.writeSessionExpired(w, r)
		return
	}

	WriteJSON(w, http.StatusOK, newSessionResponse(session))
}

// Logout destroys the server-side session and clears the cookie. Local only:
// the backend token is abandoned, not revoked.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", slog.Any("error", logoutErr))
		}
	}

	h.clearCookie(w, r, SessionCookieName)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

func (h *AuthHandlers) writeSessionExpired(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, r, SessionCookieName)
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "session_expired",
		Err:     errors.New("session expired"),
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
