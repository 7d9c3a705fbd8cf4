package models

import "time"

// Message represents a support message sent to the platform operators.
type Message struct {
	ID       int64  `json:"id"`
	SenderID int64  `json:"sender"`
	Sender   string `json:"sender_name,omitempty"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`

	// IsRead is set server-side by the mark-read action.
	IsRead bool `json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

// MessageFilter holds the supported list-endpoint query parameters for
// support messages.
type MessageFilter struct {
	Search string

	// Status is "read" or "unread"; empty means both.
	Status string

	Page int
}
