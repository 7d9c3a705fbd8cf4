package models

// BulkActionRequest applies one action label to a set of resource
// identifiers in a single request.
type BulkActionRequest struct {
	// IDs lists the target resource identifiers.
	IDs []int64 `json:"ids"`

	// Action is the backend-defined action label
	// (e.g. "delete", "activate", "deactivate", "confirm").
	Action string `json:"action"`
}

// BulkActionResult reports how many records the backend touched.
type BulkActionResult struct {
	// Updated is the number of records the action was applied to.
	Updated int `json:"updated"`

	// Detail is an optional human-readable summary.
	Detail string `json:"detail,omitempty"`
}
