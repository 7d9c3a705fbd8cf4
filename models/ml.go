package models

import (
	"encoding/json"
	"time"
)

// MLModel describes a trained analytics model registered with the backend's
// ML service.
type MLModel struct {
	ID int64 `json:"id"`

	Name string `json:"name"`

	// ModelType is one of "success_prediction", "demand_forecast",
	// "price_optimization".
	ModelType string `json:"model_type"`

	// Status is "training", "ready" or "failed".
	Status string `json:"status"`

	// Intent is the natural-language training goal recorded for the run.
	Intent string `json:"intent"`

	// Performance is the model score, nil while training or after a
	// failed run.
	Performance *float64 `json:"performance"`

	// ArtifactPath points at the stored model artifacts on the backend.
	ArtifactPath string `json:"artifact_path"`

	// TrainingMetadata carries run details the backend chose to record;
	// shape varies per run, so it stays raw.
	TrainingMetadata json.RawMessage `json:"training_metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProcurementPrediction is a single prediction the ML service produced for
// a procurement listing.
type ProcurementPrediction struct {
	ID               int64  `json:"id"`
	ProcurementID    int64  `json:"procurement"`
	ProcurementTitle string `json:"procurement_title,omitempty"`

	// MLModelID references the model that produced the value, nil for
	// rule-based predictions.
	MLModelID *int64 `json:"ml_model"`

	PredictionType string `json:"prediction_type"`

	// PredictedValue is a success probability, a demand estimate or a
	// suggested price depending on PredictionType.
	PredictedValue float64 `json:"predicted_value"`

	Confidence *float64 `json:"confidence"`

	// InputFeatures is the feature snapshot the prediction was computed
	// from; shape is model-defined.
	InputFeatures json.RawMessage `json:"input_features,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TrainModelRequest triggers a training run on the backend's ML service.
type TrainModelRequest struct {
	ModelType     string `json:"model_type"`
	MaxIterations int    `json:"max_iterations,omitempty"`
	WorkDir       string `json:"work_dir,omitempty"`
}

// PredictRequest asks the backend for an instant rule-based prediction for
// one procurement listing.
type PredictRequest struct {
	ProcurementID  int64  `json:"procurement_id"`
	PredictionType string `json:"prediction_type,omitempty"`
}

// MLServiceStatus reports whether the backend's ML toolchain is installed
// and usable.
type MLServiceStatus struct {
	Available bool   `json:"plexe_available"`
	Message   string `json:"message"`
}

// PredictionFilter holds the supported list-endpoint query parameters for
// predictions.
type PredictionFilter struct {
	// Procurement restricts results to one listing; zero means all.
	Procurement int64

	Page int
}
