package models

// DashboardSummary aggregates the headline numbers shown on the admin
// panel landing page. All values are computed by the backend per request.
type DashboardSummary struct {
	TotalAccounts      int `json:"total_accounts"`
	ActiveProcurements int `json:"active_procurements"`
	PendingPayments    int `json:"pending_payments"`
	UnreadMessages     int `json:"unread_messages"`

	// TotalRevenue is the confirmed payment total as a decimal string.
	TotalRevenue string `json:"total_revenue"`

	// RecentTransactions is a short tail of the ledger for the
	// activity widget.
	RecentTransactions []Transaction `json:"recent_transactions,omitempty"`
}
