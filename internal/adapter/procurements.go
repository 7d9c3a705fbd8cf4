package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListProcurements implements [AdminAPI]. It GETs /procurements/ with the
// filter encoded as query parameters and decodes one page of listings.
func (h *httpAdminAPI) ListProcurements(ctx context.Context, filter models.ProcurementFilter) (models.Page[models.Procurement], error) {
	var params []queryParam
	params = addParam(params, "search", filter.Search)
	params = addParam(params, "status", filter.Status)
	params = addIntParam(params, "category", filter.Category)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Procurement]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/procurements/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Procurement]{}, fmt.Errorf("list procurements request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Procurement]{}, err
	}

	return page, nil
}

// GetProcurement implements [AdminAPI]. It GETs /procurements/{id}/.
func (h *httpAdminAPI) GetProcurement(ctx context.Context, id int64) (models.Procurement, error) {
	var procurement models.Procurement

	resp, err := h.request(ctx).
		SetResult(&procurement).
		Get("/procurements/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Procurement{}, fmt.Errorf("get procurement request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Procurement{}, err
	}

	return procurement, nil
}

// CreateProcurement implements [AdminAPI]. It POSTs the writable fields to
// /procurements/ and decodes the created listing.
func (h *httpAdminAPI) CreateProcurement(ctx context.Context, input models.ProcurementInput) (models.Procurement, error) {
	var procurement models.Procurement

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&procurement).
		Post("/procurements/")
	if err != nil {
		return models.Procurement{}, fmt.Errorf("create procurement request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Procurement{}, err
	}

	return procurement, nil
}

// UpdateProcurement implements [AdminAPI]. It PATCHes /procurements/{id}/
// with the set fields of input.
func (h *httpAdminAPI) UpdateProcurement(ctx context.Context, id int64, input models.ProcurementInput) (models.Procurement, error) {
	var procurement models.Procurement

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&procurement).
		Patch("/procurements/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Procurement{}, fmt.Errorf("update procurement request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Procurement{}, err
	}

	return procurement, nil
}

// DeleteProcurement implements [AdminAPI]. It DELETEs /procurements/{id}/.
func (h *httpAdminAPI) DeleteProcurement(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/procurements/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete procurement request: %w", err)
	}

	return h.mapAPIError(resp)
}

// BulkProcurementAction implements [AdminAPI]. It POSTs the identifiers and
// action label to /procurements/bulk-action/ in one request.
func (h *httpAdminAPI) BulkProcurementAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error) {
	var result models.BulkActionResult

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/procurements/bulk-action/")
	if err != nil {
		return models.BulkActionResult{}, fmt.Errorf("bulk procurement action request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.BulkActionResult{}, err
	}

	return result, nil
}

// ToggleProcurementFeatured implements [AdminAPI]. It POSTs to
// /procurements/{id}/toggle-featured/; the backend flips is_featured and
// returns the updated listing.
func (h *httpAdminAPI) ToggleProcurementFeatured(ctx context.Context, id int64) (models.Procurement, error) {
	var procurement models.Procurement

	resp, err := h.request(ctx).
		SetResult(&procurement).
		Post("/procurements/" + strconv.FormatInt(id, 10) + "/toggle-featured/")
	if err != nil {
		return models.Procurement{}, fmt.Errorf("toggle procurement featured request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Procurement{}, err
	}

	return procurement, nil
}
