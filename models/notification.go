package models

import "time"

// Notification represents an admin-facing event notification
// (new registration, completed procurement, failed payment, etc.).
type Notification struct {
	ID    int64  `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Text  string `json:"text"`

	// IsRead is set server-side by the mark-read and mark-all-read
	// actions.
	IsRead bool `json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

// NotificationFilter holds the supported list-endpoint query parameters for
// notifications.
type NotificationFilter struct {
	// Status is "read" or "unread"; empty means both.
	Status string

	Page int
}
