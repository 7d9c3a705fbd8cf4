package models

import "time"

// Payment represents a single inbound payment recorded by the platform.
type Payment struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"account"`
	Username  string `json:"username,omitempty"`

	// Amount is the paid sum as a decimal string.
	Amount string `json:"amount"`

	// Method is the payment channel label (e.g. "card", "invoice").
	Method string `json:"method"`

	// Status is the processing state
	// (e.g. "pending", "confirmed", "refunded", "failed").
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// PaymentInput carries the writable payment fields for create and partial
// update requests. Admins mostly use it to confirm or refund.
type PaymentInput struct {
	AccountID int64  `json:"account,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Method    string `json:"method,omitempty"`
	Status    string `json:"status,omitempty"`
}

// PaymentFilter holds the supported list-endpoint query parameters for
// payments.
type PaymentFilter struct {
	Search string
	Status string
	Method string
	Page   int
}
