// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ProcureHub

// Package adapter provides the transport layer for talking to the
// procurement platform's admin panel REST API.
//
// The primary abstraction is [AdminAPI], a fixed table of typed endpoint
// operations backed by an HTTP/REST implementation ([NewHTTPAdminAPI]).
// Every operation is a single roundtrip: filters become query strings,
// inputs become JSON bodies, one resource identifier may be interpolated
// into the path. The gateway attaches the session cookie jar on every call
// and the anti-forgery token header on mutating verbs.
//
// Error values follow two channels: [ErrUnauthorized] for authorization
// failures (which additionally trigger [Navigator.NavigateTo] with the
// configured login path), and [*APIError] for every other non-2xx response,
// carrying the backend's detail message when one can be parsed.
package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/procurehub/adminapi/models"
)

//go:generate mockgen -destination=../mock/adapter_mock.go -package=mock github.com/procurehub/adminapi/internal/adapter Session,Navigator

// Session is the cookie state shared between the transport and the caller.
// It extends the standard cookie jar with direct cookie lookup so the
// gateway can read the anti-forgery token without a request in flight.
type Session interface {
	// http.CookieJar stores cookies received in responses and returns
	// the cookies to send with outbound requests.
	http.CookieJar

	// Cookie returns the raw value of the named cookie currently held
	// for origin u, and whether it is present.
	Cookie(u *url.URL, name string) (string, bool)
}

// Navigator receives the forced-navigation side effect of an authorization
// failure. A browser shell would load the page; the CLI prints a re-login
// hint; tests record the call.
type Navigator interface {
	// NavigateTo sends the user to the given panel path.
	NavigateTo(path string)
}

// AdminAPI is the fixed endpoint table of the admin panel backend. Every
// method maps its parameters onto exactly one HTTP request and decodes the
// JSON response into the typed result. No method retries, caches, or
// validates beyond what the backend reports.
type AdminAPI interface {
	// CheckAuth asks the backend whether the current session cookie maps
	// to a signed-in admin. Also primes the csrftoken cookie on a fresh
	// session.
	CheckAuth(ctx context.Context) (models.AuthStatus, error)

	// Login signs the session in with username and password.
	Login(ctx context.Context, creds models.Credentials) (models.AuthStatus, error)

	// Logout terminates the current session server-side.
	Logout(ctx context.Context) error

	// DashboardSummary fetches the panel landing page aggregates.
	DashboardSummary(ctx context.Context) (models.DashboardSummary, error)

	// ListAccounts fetches one page of accounts matching filter.
	ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.Account], error)
	// GetAccount fetches a single account by id.
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	// CreateAccount registers a new account from the writable fields.
	CreateAccount(ctx context.Context, input models.AccountInput) (models.Account, error)
	// UpdateAccount applies a partial update to the account.
	UpdateAccount(ctx context.Context, id int64, input models.AccountInput) (models.Account, error)
	// DeleteAccount removes the account.
	DeleteAccount(ctx context.Context, id int64) error
	// BulkAccountAction applies one action label to a set of accounts.
	BulkAccountAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error)
	// ToggleAccountActive flips the account's is_active flag server-side.
	ToggleAccountActive(ctx context.Context, id int64) (models.Account, error)

	// ListProcurements fetches one page of listings matching filter.
	ListProcurements(ctx context.Context, filter models.ProcurementFilter) (models.Page[models.Procurement], error)
	// GetProcurement fetches a single listing by id.
	GetProcurement(ctx context.Context, id int64) (models.Procurement, error)
	// CreateProcurement registers a new listing.
	CreateProcurement(ctx context.Context, input models.ProcurementInput) (models.Procurement, error)
	// UpdateProcurement applies a partial update to the listing.
	UpdateProcurement(ctx context.Context, id int64, input models.ProcurementInput) (models.Procurement, error)
	// DeleteProcurement removes the listing.
	DeleteProcurement(ctx context.Context, id int64) error
	// BulkProcurementAction applies one action label to a set of listings.
	BulkProcurementAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error)
	// ToggleProcurementFeatured flips the listing's is_featured flag.
	ToggleProcurementFeatured(ctx context.Context, id int64) (models.Procurement, error)

	// ListPayments fetches one page of payments matching filter.
	ListPayments(ctx context.Context, filter models.PaymentFilter) (models.Page[models.Payment], error)
	// GetPayment fetches a single payment by id.
	GetPayment(ctx context.Context, id int64) (models.Payment, error)
	// CreatePayment records a payment manually.
	CreatePayment(ctx context.Context, input models.PaymentInput) (models.Payment, error)
	// UpdatePayment applies a partial update to the payment.
	UpdatePayment(ctx context.Context, id int64, input models.PaymentInput) (models.Payment, error)
	// DeletePayment removes the payment record.
	DeletePayment(ctx context.Context, id int64) error
	// BulkPaymentAction applies one action label to a set of payments.
	BulkPaymentAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error)

	// ListTransactions fetches one page of ledger entries matching filter.
	ListTransactions(ctx context.Context, filter models.TransactionFilter) (models.Page[models.Transaction], error)
	// GetTransaction fetches a single ledger entry by id.
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)
	// CreateTransaction records a manual ledger correction.
	CreateTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error)
	// UpdateTransaction applies a partial update to the ledger entry.
	UpdateTransaction(ctx context.Context, id int64, input models.TransactionInput) (models.Transaction, error)
	// DeleteTransaction removes the ledger entry.
	DeleteTransaction(ctx context.Context, id int64) error
	// BulkTransactionAction applies one action label to a set of entries.
	BulkTransactionAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error)

	// ListCategories fetches one page of categories matching filter.
	ListCategories(ctx context.Context, filter models.CategoryFilter) (models.Page[models.Category], error)
	// GetCategory fetches a single category by id.
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	// CreateCategory registers a new category.
	CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error)
	// UpdateCategory applies a partial update to the category.
	UpdateCategory(ctx context.Context, id int64, input models.CategoryInput) (models.Category, error)
	// DeleteCategory removes the category.
	DeleteCategory(ctx context.Context, id int64) error
	// BulkCategoryAction applies one action label to a set of categories.
	BulkCategoryAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error)
	// ToggleCategoryActive flips the category's is_active flag.
	ToggleCategoryActive(ctx context.Context, id int64) (models.Category, error)

	// ListMessages fetches one page of support messages matching filter.
	ListMessages(ctx context.Context, filter models.MessageFilter) (models.Page[models.Message], error)
	// GetMessage fetches a single support message by id.
	GetMessage(ctx context.Context, id int64) (models.Message, error)
	// MarkMessageRead marks the message read and returns it.
	MarkMessageRead(ctx context.Context, id int64) (models.Message, error)

	// ListNotifications fetches one page of notifications matching filter.
	ListNotifications(ctx context.Context, filter models.NotificationFilter) (models.Page[models.Notification], error)
	// MarkNotificationRead marks one notification read and returns it.
	MarkNotificationRead(ctx context.Context, id int64) (models.Notification, error)
	// MarkAllNotificationsRead marks every unread notification read.
	MarkAllNotificationsRead(ctx context.Context) (models.BulkActionResult, error)

	// ListMLModels fetches one page of registered analytics models.
	ListMLModels(ctx context.Context, page int) (models.Page[models.MLModel], error)
	// GetMLModel fetches a single analytics model by id.
	GetMLModel(ctx context.Context, id int64) (models.MLModel, error)
	// TrainMLModel triggers a training run and returns the created model
	// record.
	TrainMLModel(ctx context.Context, req models.TrainModelRequest) (models.MLModel, error)
	// MLStatus reports whether the backend's ML toolchain is available.
	MLStatus(ctx context.Context) (models.MLServiceStatus, error)
	// ListPredictions fetches one page of predictions matching filter.
	ListPredictions(ctx context.Context, filter models.PredictionFilter) (models.Page[models.ProcurementPrediction], error)
	// GetPrediction fetches a single prediction by id.
	GetPrediction(ctx context.Context, id int64) (models.ProcurementPrediction, error)
	// Predict asks for an instant rule-based prediction for one listing.
	Predict(ctx context.Context, req models.PredictRequest) (models.ProcurementPrediction, error)
}
