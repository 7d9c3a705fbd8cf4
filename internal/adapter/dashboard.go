package adapter

import (
	"context"
	"fmt"

	"github.com/procurehub/adminapi/models"
)

// DashboardSummary implements [AdminAPI]. It GETs /dashboard/ and decodes
// the landing page aggregates.
func (h *httpAdminAPI) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	var summary models.DashboardSummary

	resp, err := h.request(ctx).
		SetResult(&summary).
		Get("/dashboard/")
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.DashboardSummary{}, err
	}

	return summary, nil
}
