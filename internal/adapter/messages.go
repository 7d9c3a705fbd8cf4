package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListMessages implements [AdminAPI]. It GETs /messages/ with the filter
// encoded as query parameters and decodes one page of support messages.
func (h *httpAdminAPI) ListMessages(ctx context.Context, filter models.MessageFilter) (models.Page[models.Message], error) {
	var params []queryParam
	params = addParam(params, "search", filter.Search)
	params = addParam(params, "status", filter.Status)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Message]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/messages/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Message]{}, fmt.Errorf("list messages request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Message]{}, err
	}

	return page, nil
}

// GetMessage implements [AdminAPI]. It GETs /messages/{id}/.
func (h *httpAdminAPI) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	var message models.Message

	resp, err := h.request(ctx).
		SetResult(&message).
		Get("/messages/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.Message{}, fmt.Errorf("get message request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// MarkMessageRead implements [AdminAPI]. It POSTs to
// /messages/{id}/mark-read/ and decodes the updated message.
func (h *httpAdminAPI) MarkMessageRead(ctx context.Context, id int64) (models.Message, error) {
	var message models.Message

	resp, err := h.request(ctx).
		SetResult(&message).
		Post("/messages/" + strconv.FormatInt(id, 10) + "/mark-read/")
	if err != nil {
		return models.Message{}, fmt.Errorf("mark message read request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}
