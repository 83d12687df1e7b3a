package httpx

import (
	"errors"
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/service"
)

// Screen identifiers the shell routes on. The selector is total: every
// combination of session state and role resolves to exactly one screen.
const (
	ScreenLogin           = "login"
	ScreenResident        = "resident"
	ScreenStaff           = "staff"
	ScreenUnsupportedRole = "unsupported_role"
)

// DashboardHandlers resolves the screen for the current session and, for
// supported roles, attaches the headline summary.
type DashboardHandlers struct {
	Summaries *service.DashboardService
}

// dashboardResponse is the shell's routing decision plus role context.
type dashboardResponse struct {
	Screen  string                    `json:"screen"`
	Session *sessionResponse          `json:"session,omitempty"`
	Summary *service.DashboardSummary `json:"summary,omitempty"`
}

// Resolve answers which screen the shell should render.
// GET /api/dashboard.
func (h *DashboardHandlers) Resolve(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteJSON(w, http.StatusOK, dashboardResponse{Screen: ScreenLogin})
		return
	}

	view := newSessionResponse(session)
	resp := dashboardResponse{Session: &view}

	switch {
	case !session.Role.Known():
		resp.Screen = ScreenUnsupportedRole
	case session.Role.Staff():
		resp.Screen = ScreenStaff
	default:
		resp.Screen = ScreenResident
	}

	// Unsupported roles get a screen but never a summary: no capability
	// means no backend reads on their behalf.
	if resp.Screen != ScreenUnsupportedRole && h.Summaries != nil {
		summary := h.Summaries.Summary(r.Context(), session)
		resp.Summary = &summary
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Summary serves the headline figures on their own, for clients that
// refresh the counters without re-resolving the whole shell.
// GET /api/dashboard/summary.
func (h *DashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	if !session.Role.Known() {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "access_denied",
			Err:     errors.New("access denied"),
		})
		return
	}

	summary := service.DashboardSummary{}
	if h.Summaries != nil {
		summary = h.Summaries.Summary(r.Context(), session)
	}
	WriteJSON(w, http.StatusOK, summary)
}
