// AngelaMos | 2026
// service.go

package prediction

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/crop"
	"github.com/agrovia/farmconnect/internal/field"
)

type CropProvider interface {
	GetOwned(ctx context.Context, userID, cropID string) (*crop.Crop, error)
}

type FieldProvider interface {
	GetOwned(ctx context.Context, userID, fieldID string) (*field.Field, error)
}

type Service struct {
	repo      Repository
	crops     CropProvider
	fields    FieldProvider
	estimator Estimator
}

func NewService(
	repo Repository,
	crops CropProvider,
	fields FieldProvider,
	estimator Estimator,
) *Service {
	return &Service{
		repo:      repo,
		crops:     crops,
		fields:    fields,
		estimator: estimator,
	}
}

// Create snapshots the crop's observed state into the prediction row,
// runs the estimator, and stores both inputs and outputs so a later
// accuracy check sees exactly what the model saw.
func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreatePredictionRequest,
) (*Prediction, error) {
	c, err := s.crops.GetOwned(ctx, userID, req.CropID)
	if err != nil {
		return nil, err
	}

	f, err := s.fields.GetOwned(ctx, userID, c.FieldID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	daysAfterSowing := int(now.Sub(c.SowingDate).Hours() / 24)
	if daysAfterSowing < 0 {
		daysAfterSowing = 0
	}

	pressure := req.PestDiseasePressure
	if pressure == "" {
		pressure = PressureLow
	}

	fertilizerTotal := c.TotalNitrogenApplied +
		c.TotalPhosphorusApplied +
		c.TotalPotassiumApplied

	estimate := s.estimator.Estimate(EstimateInputs{
		CropName:            c.CropName,
		AreaHectares:        f.AreaHectares,
		SowingDate:          c.SowingDate,
		DaysAfterSowing:     daysAfterSowing,
		CurrentStage:        c.CurrentStage,
		TempCelsius:         req.TempCelsius,
		HumidityPercent:     req.HumidityPercent,
		RainfallMM:          req.RainfallMM,
		SoilMoisturePercent: req.SoilMoisturePercent,
		IrrigationTotalMM:   c.TotalWaterUsed,
		FertilizerAppliedKg: fertilizerTotal,
		PestDiseasePressure: pressure,
	})

	p := &Prediction{
		ID:                      uuid.New().String(),
		UserID:                  userID,
		FieldID:                 c.FieldID,
		CropID:                  c.ID,
		PredictionDate:          now,
		DaysAfterSowing:         &daysAfterSowing,
		CurrentStage:            &c.CurrentStage,
		TempCelsius:             req.TempCelsius,
		HumidityPercent:         req.HumidityPercent,
		RainfallMM:              req.RainfallMM,
		SoilMoisturePercent:     req.SoilMoisturePercent,
		IrrigationTotalMM:       &c.TotalWaterUsed,
		FertilizerAppliedKg:     &fertilizerTotal,
		PestDiseasePressure:     pressure,
		ExpectedYieldPerHectare: &estimate.YieldPerHectare,
		TotalExpectedYield:      &estimate.TotalYield,
		QualityGrade:            &estimate.QualityGrade,
		PredictedHarvestDate:    &estimate.PredictedHarvestDate,
		ConfidenceScore:         &estimate.ConfidenceScore,
		ModelVersion:            estimate.ModelVersion,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	params ListPredictionsParams,
) ([]Prediction, error) {
	return s.repo.ListForOwner(ctx, userID, params)
}

func (s *Service) GetOwned(
	ctx context.Context,
	userID, predictionID string,
) (*Prediction, error) {
	p, err := s.repo.GetByID(ctx, predictionID)
	if err != nil {
		return nil, err
	}

	if p.UserID != userID {
		return nil, fmt.Errorf("get prediction: %w", core.ErrForbidden)
	}

	return p, nil
}

// RecordActual closes the loop on a prediction. Accuracy compares the
// actual yield against the predicted per-hectare figure:
// 1 - |actual - predicted| / max(actual, predicted), clamped to [0, 1].
func (s *Service) RecordActual(
	ctx context.Context,
	userID, predictionID string,
	req RecordActualRequest,
) (*Prediction, error) {
	p, err := s.GetOwned(ctx, userID, predictionID)
	if err != nil {
		return nil, err
	}

	harvestDate, err := time.Parse(dateLayout, req.ActualHarvestDate)
	if err != nil {
		return nil, fmt.Errorf(
			"invalid actual_harvest_date: %w",
			core.ErrInvalidInput,
		)
	}

	accuracy := AccuracyScore(req.ActualYield, p.ExpectedYieldPerHectare)

	p.ActualYield = &req.ActualYield
	p.ActualHarvestDate = &harvestDate
	p.ActualQuality = req.ActualQuality
	p.AccuracyScore = &accuracy
	p.Status = StatusCompleted

	if err := s.repo.RecordActual(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func AccuracyScore(actual float64, predicted *float64) float64 {
	if predicted == nil || *predicted <= 0 || actual <= 0 {
		return 0
	}

	larger := math.Max(actual, *predicted)
	score := 1 - math.Abs(actual-*predicted)/larger

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
