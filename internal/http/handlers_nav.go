package httpx

import (
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// NavHandlers serves the sidebar navigation for the current session.
type NavHandlers struct{}

// navResponse wraps the menu so the payload can grow (badges, sections)
// without breaking the shell.
type navResponse struct {
	Items []perm.MenuEntry `json:"items"`
}

// Menu returns the ordered sidebar entries for the session's role.
// GET /api/nav.
func (h *NavHandlers) Menu(w http.ResponseWriter, r *http.Request) {
	session := requireSession(w, r)
	if session == nil {
		return
	}

	items := perm.MenuFor(session.Role)
	if items == nil {
		items = []perm.MenuEntry{}
	}
	WriteJSON(w, http.StatusOK, navResponse{Items: items})
}
