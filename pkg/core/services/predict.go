package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/predict"
)

// PredictionKind names a prediction endpoint
type PredictionKind string

const (
	PredictOnsiteRatio      PredictionKind = "onsite_ratio"
	PredictSeatSatisfaction PredictionKind = "seat_satisfaction"
	PredictProjectCount     PredictionKind = "project_count"
)

// PredictionKinds lists every supported kind
var PredictionKinds = []PredictionKind{PredictOnsiteRatio, PredictSeatSatisfaction, PredictProjectCount}

// Prediction is the result of a single-record prediction. Value is nil when the
// model is not loaded, in which case Note explains why.
type Prediction struct {
	Kind  PredictionKind
	Value *float64
	Note  string
}

// MarshalJSON reports seat satisfaction under "probability" and other kinds under "prediction"
func (p Prediction) MarshalJSON() ([]byte, error) {
	key := "prediction"
	if p.Kind == PredictSeatSatisfaction {
		key = "probability"
	}

	out := map[string]any{key: p.Value}
	if p.Note != "" {
		out["note"] = p.Note
	}
	return json.Marshal(out)
}

// PredictRequest is the body of a prediction request. The features sit under
// "record"; a body without it is rejected rather than read as all defaults.
type PredictRequest struct {
	Record predict.Record `json:"record" validate:"required"`
}

// PredictRequest validates req and evaluates the model for kind against its record
func (p *Planner) PredictRequest(ctx context.Context, kind PredictionKind, req PredictRequest) (*Prediction, error) {
	if err := validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	return p.Predict(ctx, kind, req.Record)
}

// Predict evaluates one model against a free-form record
func (p *Planner) Predict(ctx context.Context, kind PredictionKind, record predict.Record) (*Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		features []float64
		err      error
		loaded   bool
		run      func([]float64) (float64, error)
		label    string
	)

	switch kind {
	case PredictOnsiteRatio:
		features, err = predict.OnsiteRecordFeatures(record)
		loaded, run, label = p.predictors.HasOnsite(), p.predictors.PredictOnsiteRatio, "onsite ratio"
	case PredictSeatSatisfaction:
		features, err = predict.SeatRecordFeatures(record)
		loaded, run, label = p.predictors.HasSeat(), p.predictors.PredictSeatSatisfaction, "seat satisfaction"
	case PredictProjectCount:
		features, err = predict.ProjectRecordFeatures(record)
		loaded, run, label = p.predictors.HasProject(), p.predictors.PredictProjectCount, "project count"
	default:
		return nil, invalid(fmt.Errorf("unknown prediction kind %q", kind))
	}
	if err != nil {
		return nil, invalid(err)
	}

	if !loaded {
		return &Prediction{Kind: kind, Note: label + " model not loaded"}, nil
	}

	value, err := run(features)
	if err != nil {
		p.logger.Warn("Prediction failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, fmt.Errorf("%s prediction failed: %w", label, err)
	}

	return &Prediction{Kind: kind, Value: &value}, nil
}
