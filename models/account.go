package models

import "time"

// Account represents a platform user account as exposed by the admin API.
// Sensitive credential material never crosses this boundary; the backend
// serializes identity and moderation attributes only.
type Account struct {
	// ID is the backend-assigned account identifier.
	ID int64 `json:"id"`

	// Username is the unique login name of the account.
	Username string `json:"username"`

	// Email is the contact address registered for the account.
	Email string `json:"email"`

	// Role is the access level label assigned by an administrator
	// (e.g. "admin", "moderator", "supplier", "buyer").
	Role string `json:"role"`

	// IsActive reports whether the account may sign in. Flipped by the
	// toggle-active admin action without touching other fields.
	IsActive bool `json:"is_active"`

	// Balance is the account wallet balance as a decimal string.
	// The backend serializes decimal fields as strings to avoid
	// floating-point drift.
	Balance string `json:"balance"`

	// DateJoined is the account registration timestamp.
	DateJoined time.Time `json:"date_joined"`

	// LastLogin is the most recent successful sign-in, if any.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// AccountInput carries the writable account fields for create and partial
// update requests. Nil/empty fields are omitted from the JSON payload so a
// PATCH only touches what the caller set.
type AccountInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// AccountFilter holds the supported list-endpoint query parameters for
// accounts. Empty values are dropped from the query string.
type AccountFilter struct {
	// Search matches against username and email.
	Search string

	// Role restricts results to a single role label.
	Role string

	// Status is "active" or "inactive"; empty means both.
	Status string

	// Page selects a results page; zero requests the first page.
	Page int
}
