// AngelaMos | 2026
// repository.go

package prediction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agrovia/farmconnect/internal/core"
)

type Repository interface {
	Create(ctx context.Context, prediction *Prediction) error
	GetByID(ctx context.Context, id string) (*Prediction, error)
	ListForOwner(
		ctx context.Context,
		userID string,
		params ListPredictionsParams,
	) ([]Prediction, error)
	RecordActual(ctx context.Context, prediction *Prediction) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const predictionColumns = `
	id, user_id, field_id, crop_id, prediction_date, days_after_sowing,
	current_stage, temp_celsius, humidity_percent, rainfall_mm,
	soil_moisture_percent, irrigation_total_mm, fertilizer_applied_kg,
	pest_disease_pressure, expected_yield_per_hectare,
	total_expected_yield, quality_grade, predicted_harvest_date,
	confidence_score, model_version, actual_yield, actual_harvest_date,
	actual_quality, accuracy_score, status, created_at, updated_at`

func (r *repository) Create(ctx context.Context, p *Prediction) error {
	query := `
		INSERT INTO yield_predictions (
			id, user_id, field_id, crop_id, prediction_date,
			days_after_sowing, current_stage, temp_celsius,
			humidity_percent, rainfall_mm, soil_moisture_percent,
			irrigation_total_mm, fertilizer_applied_kg,
			pest_disease_pressure, expected_yield_per_hectare,
			total_expected_yield, quality_grade, predicted_harvest_date,
			confidence_score, model_version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20)
		RETURNING status, created_at, updated_at`

	err := r.db.GetContext(ctx, p, query,
		p.ID,
		p.UserID,
		p.FieldID,
		p.CropID,
		p.PredictionDate,
		p.DaysAfterSowing,
		p.CurrentStage,
		p.TempCelsius,
		p.HumidityPercent,
		p.RainfallMM,
		p.SoilMoisturePercent,
		p.IrrigationTotalMM,
		p.FertilizerAppliedKg,
		p.PestDiseasePressure,
		p.ExpectedYieldPerHectare,
		p.TotalExpectedYield,
		p.QualityGrade,
		p.PredictedHarvestDate,
		p.ConfidenceScore,
		p.ModelVersion,
	)
	if err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Prediction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM yield_predictions
		WHERE id = $1`, predictionColumns)

	var p Prediction
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get prediction: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}

	return &p, nil
}

func (r *repository) ListForOwner(
	ctx context.Context,
	userID string,
	params ListPredictionsParams,
) ([]Prediction, error) {
	params.Normalize()

	var query string
	var args []any

	if params.CropID != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM yield_predictions
			WHERE user_id = $1 AND crop_id = $2
			ORDER BY created_at DESC
			LIMIT $3`, predictionColumns)
		args = []any{userID, params.CropID, params.Limit}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM yield_predictions
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2`, predictionColumns)
		args = []any{userID, params.Limit}
	}

	predictions := []Prediction{}
	if err := r.db.SelectContext(ctx, &predictions, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	return predictions, nil
}

func (r *repository) RecordActual(ctx context.Context, p *Prediction) error {
	query := `
		UPDATE yield_predictions
		SET actual_yield = $2, actual_harvest_date = $3,
		    actual_quality = $4, accuracy_score = $5, status = $6
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID,
		p.ActualYield,
		p.ActualHarvestDate,
		p.ActualQuality,
		p.AccuracyScore,
		p.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("record actual yield: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("record actual yield: %w", err)
	}

	return nil
}
