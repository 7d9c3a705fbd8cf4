package models

import "time"

// Transaction represents a wallet ledger entry: a debit or credit applied
// to an account, optionally tied to a procurement listing.
type Transaction struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"account"`
	Username  string `json:"username,omitempty"`

	// ProcurementID references the listing the entry settles, if any.
	ProcurementID *int64 `json:"procurement,omitempty"`

	// Amount is the transaction sum as a decimal string; the sign is
	// carried by Type, not the value.
	Amount string `json:"amount"`

	// Type is the ledger direction (e.g. "deposit", "withdrawal",
	// "purchase", "refund").
	Type string `json:"type"`

	// Status is the settlement state (e.g. "pending", "completed",
	// "reversed").
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// TransactionInput carries the writable transaction fields for create and
// partial update requests (manual ledger corrections).
type TransactionInput struct {
	AccountID     int64  `json:"account,omitempty"`
	ProcurementID *int64 `json:"procurement,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Type          string `json:"type,omitempty"`
	Status        string `json:"status,omitempty"`
}

// TransactionFilter holds the supported list-endpoint query parameters for
// transaction records.
type TransactionFilter struct {
	Search string
	Type   string
	Status string
	Page   int
}
