package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Notification is one delivered notification.
type Notification struct {
	NotificationID int    `json:"notificationID"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	CreatedAt      string `json:"createdAt"`
	IsRead         bool   `json:"isRead"`
}

// BroadcastRequest sends a notification to every account.
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// MessageResponse is the backend's generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// CountResponse carries a single counter.
type CountResponse struct {
	Count int `json:"count"`
}

// MyNotifications pages through the authenticated user's notifications.
// GET /api/notification/my-notification.
func (c *Client) MyNotifications(ctx context.Context, token string, skip, limit int) ([]Notification, error) {
	var out []Notification
	path := fmt.Sprintf("/api/notification/my-notification?skip=%d&limit=%d", skip, limit)
	err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &out})
	return out, err
}

// MarkNotificationRead marks one notification as read.
// PATCH /api/notification/{id}/read.
func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int) (MessageResponse, error) {
	var out MessageResponse
	path := fmt.Sprintf("/api/notification/%d/read", id)
	err := c.do(ctx, call{method: http.MethodPatch, path: path, token: token, out: &out})
	return out, err
}

// UnreadCount reports how many notifications are unread.
// GET /api/notification/unread-count.
func (c *Client) UnreadCount(ctx context.Context, token string) (CountResponse, error) {
	var out CountResponse
	err := c.do(ctx, call{method: http.MethodGet, path: "/api/notification/unread-count", token: token, out: &out})
	return out, err
}

// BroadcastNotification pushes a notification to all accounts.
// POST /api/notification/broadcast.
func (c *Client) BroadcastNotification(ctx context.Context, token string, req BroadcastRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/api/notification/broadcast", token: token, body: req, out: &out})
	return out, err
}
