package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/procurehub/adminapi/models"
)

// ListMLModels implements [AdminAPI]. It GETs /ml/models/ and decodes one
// page of registered analytics models.
func (h *httpAdminAPI) ListMLModels(ctx context.Context, pageNum int) (models.Page[models.MLModel], error) {
	var params []queryParam
	params = addIntParam(params, "page", int64(pageNum))

	var page models.Page[models.MLModel]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/ml/models/" + encodeParams(params))
	if err != nil {
		return models.Page[models.MLModel]{}, fmt.Errorf("list ml models request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.MLModel]{}, err
	}

	return page, nil
}

// GetMLModel implements [AdminAPI]. It GETs /ml/models/{id}/.
func (h *httpAdminAPI) GetMLModel(ctx context.Context, id int64) (models.MLModel, error) {
	var model models.MLModel

	resp, err := h.request(ctx).
		SetResult(&model).
		Get("/ml/models/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.MLModel{}, fmt.Errorf("get ml model request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.MLModel{}, err
	}

	return model, nil
}

// TrainMLModel implements [AdminAPI]. It POSTs the training parameters to
// /ml/models/train/ and decodes the created model record. Training runs
// synchronously on the backend, so this call can be slow.
func (h *httpAdminAPI) TrainMLModel(ctx context.Context, req models.TrainModelRequest) (models.MLModel, error) {
	var model models.MLModel

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&model).
		Post("/ml/models/train/")
	if err != nil {
		return models.MLModel{}, fmt.Errorf("train ml model request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.MLModel{}, err
	}

	return model, nil
}

// MLStatus implements [AdminAPI]. It GETs /ml/models/status/ and reports
// whether the backend's ML toolchain is installed.
func (h *httpAdminAPI) MLStatus(ctx context.Context) (models.MLServiceStatus, error) {
	var status models.MLServiceStatus

	resp, err := h.request(ctx).
		SetResult(&status).
		Get("/ml/models/status/")
	if err != nil {
		return models.MLServiceStatus{}, fmt.Errorf("ml status request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.MLServiceStatus{}, err
	}

	return status, nil
}

// ListPredictions implements [AdminAPI]. It GETs /ml/predictions/ with the
// filter encoded as query parameters and decodes one page of predictions.
func (h *httpAdminAPI) ListPredictions(ctx context.Context, filter models.PredictionFilter) (models.Page[models.ProcurementPrediction], error) {
	var params []queryParam
	params = addIntParam(params, "procurement", filter.Procurement)
	params = addIntParam(params, "page", int64(filter.Page))

	var page models.Page[models.ProcurementPrediction]
	resp, err := h.request(ctx).
		SetResult(&page).
		Get("/ml/predictions/" + encodeParams(params))
	if err != nil {
		return models.Page[models.ProcurementPrediction]{}, fmt.Errorf("list predictions request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.Page[models.ProcurementPrediction]{}, err
	}

	return page, nil
}

// GetPrediction implements [AdminAPI]. It GETs /ml/predictions/{id}/.
func (h *httpAdminAPI) GetPrediction(ctx context.Context, id int64) (models.ProcurementPrediction, error) {
	var prediction models.ProcurementPrediction

	resp, err := h.request(ctx).
		SetResult(&prediction).
		Get("/ml/predictions/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return models.ProcurementPrediction{}, fmt.Errorf("get prediction request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.ProcurementPrediction{}, err
	}

	return prediction, nil
}

// Predict implements [AdminAPI]. It POSTs the listing reference to
// /ml/predictions/predict/ and decodes the instant rule-based prediction.
func (h *httpAdminAPI) Predict(ctx context.Context, req models.PredictRequest) (models.ProcurementPrediction, error) {
	var prediction models.ProcurementPrediction

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&prediction).
		Post("/ml/predictions/predict/")
	if err != nil {
		return models.ProcurementPrediction{}, fmt.Errorf("predict request: %w", err)
	}
	if err = h.mapAPIError(resp); err != nil {
		return models.ProcurementPrediction{}, err
	}

	return prediction, nil
}
