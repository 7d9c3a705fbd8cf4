package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListAccounts implements [AdminAPI]. It GETs /accounts/ with the filter
// encoded as query parameters (empty values dropped) and decodes one page
// of accounts.
func (h *httpAdminAPI) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.Account], error) {
	var params []queryParam
	params = addParam(params, "search", filter.Search)
	params = addParam(params, "role", filter.Role)
	params = addParam(params, "status", filter.Status)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Account]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/accounts/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Account]{}, fmt.Errorf("list accounts request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Account]{}, err
	}

	return page, nil
}

// GetAccount implements [AdminAPI]. It GETs /accounts/{id}/.
func (h *httpAdminAPI) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account

	resp, err := h.request(ctx).
		SetResult(&account).
		Get("/accounts/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// CreateAccount implements [AdminAPI]. It POSTs the writable fields to
// /accounts/ and decodes the created record.
func (h *httpAdminAPI) CreateAccount(ctx context.Context, input models.AccountInput) (models.Account, error) {
	var account models.Account

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&account).
		Post("/accounts/")
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// UpdateAccount implements [AdminAPI]. It PATCHes /accounts/{id}/ with the
// set fields of input and decodes the updated record.
func (h *httpAdminAPI) UpdateAccount(ctx context.Context, id int64, input models.AccountInput) (models.Account, error) {
	var account models.Account

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&account).
		Patch("/accounts/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Account{}, fmt.Errorf("update account request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// DeleteAccount implements [AdminAPI]. It DELETEs /accounts/{id}/.
func (h *httpAdminAPI) DeleteAccount(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/accounts/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return h.mapAPIError(resp)
}

// BulkAccountAction implements [AdminAPI]. It POSTs the identifiers and
// action label to /accounts/bulk-action/ in one request.
func (h *httpAdminAPI) BulkAccountAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error) {
	var result models.BulkActionResult

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/accounts/bulk-action/")
	if err != nil {
		return models.BulkActionResult{}, fmt.Errorf("bulk account action request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.BulkActionResult{}, err
	}

	return result, nil
}

// ToggleAccountActive implements [AdminAPI]. It POSTs to
// /accounts/{id}/toggle-active/; the backend flips is_active and returns
// the updated record.
func (h *httpAdminAPI) ToggleAccountActive(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account

	resp, err := h.request(ctx).
		SetResult(&account).
		Post("/accounts/" + strconv.FormatInt(id, 10) + "/toggle-active/")
	if err != nil {
		return models.Account{}, fmt.Errorf("toggle account active request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}
