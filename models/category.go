package models

// Category represents a procurement listing category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`

	// Description is an optional category annotation shown in the panel.
	Description string `json:"description,omitempty"`

	// IsActive controls whether new listings may use the category.
	// Flipped by the toggle-active admin action.
	IsActive bool `json:"is_active"`

	// ProcurementCount is the number of listings filed under the
	// category; read-only, computed by the backend.
	ProcurementCount int `json:"procurement_count,omitempty"`
}

// CategoryInput carries the writable category fields for create and partial
// update requests.
type CategoryInput struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// CategoryFilter holds the supported list-endpoint query parameters for
// categories.
type CategoryFilter struct {
	Search string
	Status string
	Page   int
}
