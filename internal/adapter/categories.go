package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListCategories implements [AdminAPI]. It GETs /categories/ with the
// filter encoded as query parameters and decodes one page of categories.
func (h *httpAdminAPI) ListCategories(ctx context.Context, filter models.CategoryFilter) (models.Page[models.Category], error) {
	var params []queryParam
	params = addParam(params, "search", filter.Search)
	params = addParam(params, "status", filter.Status)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Category]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/categories/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Category]{}, fmt.Errorf("list categories request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Category]{}, err
	}

	return page, nil
}

// GetCategory implements [AdminAPI]. It GETs /categories/{id}/.
func (h *httpAdminAPI) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	var category models.Category

	resp, err := h.request(ctx).
		SetResult(&category).
		Get("/categories/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Category{}, fmt.Errorf("get category request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// CreateCategory implements [AdminAPI]. It POSTs the writable fields to
// /categories/ and decodes the created record.
func (h *httpAdminAPI) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	var category models.Category

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&category).
		Post("/categories/")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// UpdateCategory implements [AdminAPI]. It PATCHes /categories/{id}/ with
// the set fields of input.
func (h *httpAdminAPI) UpdateCategory(ctx context.Context, id int64, input models.CategoryInput) (models.Category, error) {
	var category models.Category

	resp, err := h.request(ctx).
		SetBody(input).
		SetResult(&category).
		Patch("/categories/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Category{}, fmt.Errorf("update category request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// DeleteCategory implements [AdminAPI]. It DELETEs /categories/{id}/.
func (h *httpAdminAPI) DeleteCategory(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete("/categories/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete category request: %w", err)
	}

	return h.mapAPIError(resp)
}

// BulkCategoryAction implements [AdminAPI]. It POSTs the identifiers and
// action label to /categories/bulk-action/ in one request.
func (h *httpAdminAPI) BulkCategoryAction(ctx context.Context, req models.BulkActionRequest) (models.BulkActionResult, error) {
	var result models.BulkActionResult

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/categories/bulk-action/")
	if err != nil {
		return models.BulkActionResult{}, fmt.Errorf("bulk category action request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.BulkActionResult{}, err
	}

	return result, nil
}

// ToggleCategoryActive implements [AdminAPI]. It POSTs to
// /categories/{id}/toggle-active/; the backend flips is_active and returns
// the updated record.
func (h *httpAdminAPI) ToggleCategoryActive(ctx context.Context, id int64) (models.Category, error) {
	var category models.Category

	resp, err := h.request(ctx).
		SetResult(&category).
		Post("/categories/" + strconv.FormatInt(id, 10) + "/toggle-active/")
	if err != nil {
		return models.Category{}, fmt.Errorf("toggle category active request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}
