package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListPayments implements [AdminAPI]. It GETs /payments/ with the filter
// encoded as query parameters and decodes one page of payments.
func (h *httpAdminAPI) ListPayments(ctx context.Context, filter models.PaymentFilter) (models.Page[models.Payment], error) {
	var params []queryParam
	params = addParam(params, "search", filter.Search)
	params = addParam(params, "status", filter.Status)
	params = addParam(params, "method", filter.Method)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Payment]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/payments/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Payment]{}, fmt.Errorf("list payments request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Payment]{}, err
	}

	return page, nil
}

// GetPayment implements [AdminAPI]. It GETs /payments/{id}/.
func (h *httpAdminAPI) GetPayment(ctx context.Context, id int64) (models.Payment, error) {
	var payment models.Payment

	resp, err := h.request(ctx).
		SetResult(&payment).
		Get("/payments/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Payment{}, fmt.Errorf("get payment request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}

// CreatePayment implements [AdminAPI]. It POSTs the writable fields to
// /payments/ and decodes the created record.
func (h *httpAdminAPI) CreatePayment(ctx context.Context, input models.PaymentInput) (models.Payment, error) {
	var payment models.Payment

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&payment).
		Post("/payments/")
	if err != nil {
		return models.Payment{}, fmt.Errorf("create payment request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}

// UpdatePayment implements [AdminAPI]. It PATCHes /payments/{id}/ with the
// set fields of input (typically a status change).
func (h *httpAdminAPI) UpdatePayment(ctx context.Context, id int64, input models.PaymentInput) (models.Payment, error) {
	var payment models.Payment

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&payment).
		Patch("/payments/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Payment{}, fmt.Errorf("update payment request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}

// DeletePayment implements [AdminAPI]. It DELETEs /payments/{id}/.
func (h *httpAdminAPI) DeletePayment(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/payments/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete payment request: %w", err)
	}

	return h.mapAPIError(resp)
}

// BulkPaymentAction implements [AdminAPI]. It POSTs the identifiers and
// action label to /payments/bulk-action/ in one request.
func (h *httpAdminAPI) BulkPaymentAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error) {
	var result models.BulkActionResult

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/payments/bulk-action/")
	if err != nil {
		return models.BulkActionResult{}, fmt.Errorf("bulk payment action request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.BulkActionResult{}, err
	}

	return result, nil
}
