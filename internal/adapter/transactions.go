package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListTransactions implements [AdminAPI]. It GETs /transactions/ with the
// filter encoded as query parameters and decodes one page of ledger
// entries.
func (h *httpAdminAPI) ListTransactions(ctx context.Context, filter models.TransactionFilter) (models.Page[models.Transaction], error) {
	var params []queryParam
	params = addParam(params, "search", filter.Search)
	params = addParam(params, "type", filter.Type)
	params = addParam(params, "status", filter.Status)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Transaction]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/transactions/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Transaction]{}, fmt.Errorf("list transactions request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Transaction]{}, err
	}

	return page, nil
}

// GetTransaction implements [AdminAPI]. It GETs /transactions/{id}/.
func (h *httpAdminAPI) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	var tx models.Transaction

	resp, err := h.request(ctx).
		SetResult(&tx).
		Get("/transactions/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

// CreateTransaction implements [AdminAPI]. It POSTs a manual ledger
// correction to /transactions/ and decodes the created entry.
func (h *httpAdminAPI) CreateTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	var tx models.Transaction

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&tx).
		Post("/transactions/")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

// UpdateTransaction implements [AdminAPI]. It PATCHes /transactions/{id}/
// with the set fields of input.
func (h *httpAdminAPI) UpdateTransaction(ctx context.Context, id int64, input models.TransactionInput) (models.Transaction, error) {
	var tx models.Transaction

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&tx).
		Patch("/transactions/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

// DeleteTransaction implements [AdminAPI]. It DELETEs /transactions/{id}/.
func (h *httpAdminAPI) DeleteTransaction(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/transactions/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}

	return h.mapAPIError(resp)
}

// BulkTransactionAction implements [AdminAPI]. It POSTs the identifiers and
// action label to /transactions/bulk-action/ in one request.
func (h *httpAdminAPI) BulkTransactionAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error) {
	var result models.BulkActionResult

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/transactions/bulk-action/")
	if err != nil {
		return models.BulkActionResult{}, fmt.Errorf("bulk transaction action request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.BulkActionResult{}, err
	}

	return result, nil
}
