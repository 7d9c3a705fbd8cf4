package models

// Page is the paginated list envelope returned by every list endpoint:
// a total count, opaque next/previous page URLs, and the current page of
// results.
type Page[T any] struct {
	// Count is the total number of matching records across all pages.
	Count int `json:"count"`

	// Next is the absolute URL of the following page, or nil on the
	// last page. Treated as opaque; callers pass the page number from
	// the filter instead of dereferencing it.
	Next *string `json:"next"`

	// Previous is the absolute URL of the preceding page, or nil on
	// the first page.
	Previous *string `json:"previous"`

	// Results holds the records of the current page.
	Results []T `json:"results"`
}
