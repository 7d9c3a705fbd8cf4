package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListNotifications implements [AdminAPI]. It GETs /notifications/ with the
// filter encoded as query parameters and decodes one page of notifications.
func (h *httpAdminAPI) ListNotifications(ctx context.Context, filter models.NotificationFilter) (models.Page[models.Notification], error) {
	var params []queryParam
	params = addParam(params, "status", filter.Status)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.Notification]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/notifications/" + encodeParams(params))
	if err != nil {
		return models.Page[models.Notification]{}, fmt.Errorf("list notifications request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.Notification]{}, err
	}

	return page, nil
}

// MarkNotificationRead implements [AdminAPI]. It POSTs to
// /notifications/{id}/mark-read/ and decodes the updated notification.
func (h *httpAdminAPI) MarkNotificationRead(ctx context.Context, id int64) (models.Notification, error) {
	var notification models.Notification

	resp, err := h.request(ctx).
		SetResult(&notification).
		Post("/notifications/" + strconv.FormatInt(id, 10) + "/mark-read/")
	if err != nil {
		return models.Notification{}, fmt.Errorf("mark notification read request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Notification{}, err
	}

	return notification, nil
}

// MarkAllNotificationsRead implements [AdminAPI]. It POSTs to
// /notifications/mark-all-read/ and reports how many were updated.
func (h *httpAdminAPI) MarkAllNotificationsRead(ctx context.Context) (models.BulkActionResult, error) {
	var result models.BulkActionResult

	resp, err := h.request(ctx).
		SetResult(&result).
		Post("/notifications/mark-all-read/")
	if err != nil {
		return models.BulkActionResult{}, fmt.Errorf("mark all notifications read request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.BulkActionResult{}, err
	}

	return result, nil
}
