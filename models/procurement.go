package models

import "time"

// Procurement represents a procurement listing: a joint purchase that
// collects participants until it reaches its funding target or its deadline.
type Procurement struct {
	// ID is the backend-assigned listing identifier.
	ID int64 `json:"id"`

	// Title is the short display name of the listing.
	Title string `json:"title"`

	// Description is the full listing text.
	Description string `json:"description"`

	// CategoryID references the category the listing belongs to.
	CategoryID int64 `json:"category"`

	// CategoryName is the denormalized category title for display.
	CategoryName string `json:"category_name,omitempty"`

	// Status is the moderation/lifecycle state
	// (e.g. "draft", "active", "completed", "cancelled").
	Status string `json:"status"`

	// PricePerUnit is the per-unit price as a decimal string.
	PricePerUnit string `json:"price_per_unit"`

	// TargetAmount is the funding goal as a decimal string.
	TargetAmount string `json:"target_amount"`

	// CurrentAmount is the collected total as a decimal string.
	CurrentAmount string `json:"current_amount"`

	// ParticipantCount is the number of joined buyers.
	ParticipantCount int `json:"participant_count"`

	// IsFeatured marks the listing for front-page promotion. Flipped by
	// the toggle-featured admin action.
	IsFeatured bool `json:"is_featured"`

	// CreatedAt is the listing creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// Deadline is the funding cutoff, if one is set.
	Deadline *time.Time `json:"deadline,omitempty"`
}

// ProcurementInput carries the writable listing fields for create and
// partial update requests.
type ProcurementInput struct {
	Title        string     `json:"title,omitempty"`
	Description  string     `json:"description,omitempty"`
	CategoryID   int64      `json:"category,omitempty"`
	Status       string     `json:"status,omitempty"`
	PricePerUnit string     `json:"price_per_unit,omitempty"`
	TargetAmount string     `json:"target_amount,omitempty"`
	IsFeatured   *bool      `json:"is_featured,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// ProcurementFilter holds the supported list-endpoint query parameters for
// procurement listings.
type ProcurementFilter struct {
	// Search matches against title and description.
	Search string

	// Status restricts results to one lifecycle state.
	Status string

	// Category restricts results to one category identifier;
	// zero means all categories.
	Category int64

	// Page selects a results page; zero requests the first page.
	Page int
}
