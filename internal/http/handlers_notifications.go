package httpx

import (
	"errors"
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// NotificationHandlers proxies the notification views. Reading your own
// notifications needs only a session; broadcasting is capability-gated.
type NotificationHandlers struct {
	Backend *backend.Client
}

// Mine lists the authenticated user's notifications.
// GET /api/notifications.
func (h *NotificationHandlers) Mine(w http.ResponseWriter, r *http.Request) {
	session := requireSession(w, r)
	if session == nil {
		return
	}

	skip, limit := ParseSkipLimit(r, defaultPageLimit, maxPageLimit)
	notifications, err := h.Backend.MyNotifications(r.Context(), session.Token, skip, limit)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if notifications == nil {
		notifications = []backend.Notification{}
	}
	WriteJSON(w, http.StatusOK, notifications)
}

// MarkRead marks one notification as read.
// PATCH /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	session := requireSession(w, r)
	if session == nil {
		return
	}

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.Backend.MarkNotificationRead(r.Context(), session.Token, id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// UnreadCount reports the unread badge count.
// GET /api/notifications/unread-count.
func (h *NotificationHandlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	session := requireSession(w, r)
	if session == nil {
		return
	}

	count, err := h.Backend.UnreadCount(r.Context(), session.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, count)
}

// Broadcast pushes a notification to every account.
// POST /api/notifications/broadcast.
func (h *NotificationHandlers) Broadcast(w http.ResponseWriter, r *http.Request) {
	session := sessionWithCapability(w, r, perm.CanBroadcastNotifications)
	if session == nil {
		return
	}

	var req backend.BroadcastRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.Message == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("title and message are required"),
		})
		return
	}

	resp, err := h.Backend.BroadcastNotification(r.Context(), session.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, resp)
}
