package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehub/adminapi/models"
)

// recordedRequest captures what the backend saw for one adapter call.
type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
}

func newRecordingServer(t *testing.T) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestEndpointTable(t *testing.T) {
	bulk := models.BulkActionRequest{IDs: []int64{1, 2, 3}, Action: "delete"}

	tests := []struct {
		name       string
		call       func(ctx context.Context, a *httpAdminAPI) error
		wantMethod string
		wantPath   string
	}{
		{"check auth", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.CheckAuth(ctx)
			return err
		}, http.MethodGet, "/auth/check/"},
		{"login", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.Login(ctx, models.Credentials{Username: "u", Password: "p"})
			return err
		}, http.MethodPost, "/auth/login/"},
		{"logout", func(ctx context.Context, a *httpAdminAPI) error {
			return a.Logout(ctx)
		}, http.MethodPost, "/auth/logout/"},
		{"dashboard", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.DashboardSummary(ctx)
			return err
		}, http.MethodGet, "/dashboard/"},

		{"list accounts", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListAccounts(ctx, models.AccountFilter{})
			return err
		}, http.MethodGet, "/accounts/"},
		{"create account", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.CreateAccount(ctx, models.AccountInput{})
			return err
		}, http.MethodPost, "/accounts/"},
		{"update account", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.UpdateAccount(ctx, 7, models.AccountInput{})
			return err
		}, http.MethodPatch, "/accounts/7/"},
		{"delete account", func(ctx context.Context, a *httpAdminAPI) error {
			return a.DeleteAccount(ctx, 7)
		}, http.MethodDelete, "/accounts/7/"},
		{"bulk account action", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.BulkAccountAction(ctx, bulk)
			return err
		}, http.MethodPost, "/accounts/bulk-action/"},
		{"toggle account active", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ToggleAccountActive(ctx, 7)
			return err
		}, http.MethodPost, "/accounts/7/toggle-active/"},

		{"list procurements", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListProcurements(ctx, models.ProcurementFilter{})
			return err
		}, http.MethodGet, "/procurements/"},
		{"get procurement", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetProcurement(ctx, 11)
			return err
		}, http.MethodGet, "/procurements/11/"},
		{"create procurement", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.CreateProcurement(ctx, models.ProcurementInput{})
			return err
		}, http.MethodPost, "/procurements/"},
		{"update procurement", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.UpdateProcurement(ctx, 11, models.ProcurementInput{})
			return err
		}, http.MethodPatch, "/procurements/11/"},
		{"delete procurement", func(ctx context.Context, a *httpAdminAPI) error {
			return a.DeleteProcurement(ctx, 11)
		}, http.MethodDelete, "/procurements/11/"},
		{"bulk procurement action", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.BulkProcurementAction(ctx, bulk)
			return err
		}, http.MethodPost, "/procurements/bulk-action/"},
		{"toggle procurement featured", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ToggleProcurementFeatured(ctx, 11)
			return err
		}, http.MethodPost, "/procurements/11/toggle-featured/"},

		{"list payments", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListPayments(ctx, models.PaymentFilter{})
			return err
		}, http.MethodGet, "/payments/"},
		{"get payment", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetPayment(ctx, 5)
			return err
		}, http.MethodGet, "/payments/5/"},
		{"create payment", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.CreatePayment(ctx, models.PaymentInput{})
			return err
		}, http.MethodPost, "/payments/"},
		{"update payment", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.UpdatePayment(ctx, 5, models.PaymentInput{})
			return err
		}, http.MethodPatch, "/payments/5/"},
		{"delete payment", func(ctx context.Context, a *httpAdminAPI) error {
			return a.DeletePayment(ctx, 5)
		}, http.MethodDelete, "/payments/5/"},
		{"bulk payment action", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.BulkPaymentAction(ctx, bulk)
			return err
		}, http.MethodPost, "/payments/bulk-action/"},

		{"list transactions", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListTransactions(ctx, models.TransactionFilter{})
			return err
		}, http.MethodGet, "/transactions/"},
		{"get transaction", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetTransaction(ctx, 9)
			return err
		}, http.MethodGet, "/transactions/9/"},
		{"create transaction", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.CreateTransaction(ctx, models.TransactionInput{})
			return err
		}, http.MethodPost, "/transactions/"},
		{"update transaction", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.UpdateTransaction(ctx, 9, models.TransactionInput{})
			return err
		}, http.MethodPatch, "/transactions/9/"},
		{"delete transaction", func(ctx context.Context, a *httpAdminAPI) error {
			return a.DeleteTransaction(ctx, 9)
		}, http.MethodDelete, "/transactions/9/"},
		{"bulk transaction action", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.BulkTransactionAction(ctx, bulk)
			return err
		}, http.MethodPost, "/transactions/bulk-action/"},

		{"list categories", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListCategories(ctx, models.CategoryFilter{})
			return err
		}, http.MethodGet, "/categories/"},
		{"get category", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetCategory(ctx, 2)
			return err
		}, http.MethodGet, "/categories/2/"},
		{"create category", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.CreateCategory(ctx, models.CategoryInput{})
			return err
		}, http.MethodPost, "/categories/"},
		{"update category", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.UpdateCategory(ctx, 2, models.CategoryInput{})
			return err
		}, http.MethodPatch, "/categories/2/"},
		{"delete category", func(ctx context.Context, a *httpAdminAPI) error {
			return a.DeleteCategory(ctx, 2)
		}, http.MethodDelete, "/categories/2/"},
		{"bulk category action", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.BulkCategoryAction(ctx, bulk)
			return err
		}, http.MethodPost, "/categories/bulk-action/"},
		{"toggle category active", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ToggleCategoryActive(ctx, 2)
			return err
		}, http.MethodPost, "/categories/2/toggle-active/"},

		{"list messages", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListMessages(ctx, models.MessageFilter{})
			return err
		}, http.MethodGet, "/messages/"},
		{"get message", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetMessage(ctx, 4)
			return err
		}, http.MethodGet, "/messages/4/"},
		{"mark message read", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.MarkMessageRead(ctx, 4)
			return err
		}, http.MethodPost, "/messages/4/mark-read/"},

		{"list notifications", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListNotifications(ctx, models.NotificationFilter{})
			return err
		}, http.MethodGet, "/notifications/"},
		{"mark notification read", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.MarkNotificationRead(ctx, 8)
			return err
		}, http.MethodPost, "/notifications/8/mark-read/"},
		{"mark all notifications read", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.MarkAllNotificationsRead(ctx)
			return err
		}, http.MethodPost, "/notifications/mark-all-read/"},

		{"list ml models", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListMLModels(ctx, 0)
			return err
		}, http.MethodGet, "/ml/models/"},
		{"get ml model", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetMLModel(ctx, 6)
			return err
		}, http.MethodGet, "/ml/models/6/"},
		{"train ml model", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.TrainMLModel(ctx, models.TrainModelRequest{})
			return err
		}, http.MethodPost, "/ml/models/train/"},
		{"ml status", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.MLStatus(ctx)
			return err
		}, http.MethodGet, "/ml/models/status/"},
		{"list predictions", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.ListPredictions(ctx, models.PredictionFilter{})
			return err
		}, http.MethodGet, "/ml/predictions/"},
		{"get prediction", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.GetPrediction(ctx, 3)
			return err
		}, http.MethodGet, "/ml/predictions/3/"},
		{"predict", func(ctx context.Context, a *httpAdminAPI) error {
			_, err := a.Predict(ctx, models.PredictRequest{})
			return err
		}, http.MethodPost, "/ml/predictions/predict/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newRecordingServer(t)
			a, _ := newTestAPI(t, srv.URL, nil)

			require.NoError(t, tt.call(context.Background(), a))
			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, testBasePath+tt.wantPath, rec.path)
			assert.Empty(t, rec.query)
		})
	}
}

func TestBulkAction_WireFormat(t *testing.T) {
	srv, rec := newRecordingServer(t)
	a, _ := newTestAPI(t, srv.URL, nil)

	_, err := a.BulkAccountAction(context.Background(), models.BulkActionRequest{
		IDs:    []int64{1, 2, 3},
		Action: "delete",
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ids":[1,2,3],"action":"delete"}`, rec.body)
}

func TestListAccounts_FilterBecomesQueryString(t *testing.T) {
	srv, rec := newRecordingServer(t)
	a, _ := newTestAPI(t, srv.URL, nil)

	_, err := a.ListAccounts(context.Background(), models.AccountFilter{
		Search: "john doe",
		Status: "active",
		Page:   2,
	})
	require.NoError(t, err)

	// Role is unset and never reaches the backend; surviving pairs keep
	// their filter order.
	assert.Equal(t, "search=john+doe&status=active&page=2", rec.query)
}

func TestListProcurements_CategoryZeroMeansAll(t *testing.T) {
	srv, rec := newRecordingServer(t)
	a, _ := newTestAPI(t, srv.URL, nil)

	_, err := a.ListProcurements(context.Background(), models.ProcurementFilter{
		Status:   "published",
		Category: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "status=published&category=12", rec.query)

	_, err = a.ListProcurements(context.Background(), models.ProcurementFilter{})
	require.NoError(t, err)
	assert.Empty(t, rec.query)
}
