// AngelaMos | 2026
// service.go

package crop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/field"
)

type FieldProvider interface {
	GetOwned(ctx context.Context, userID, fieldID string) (*field.Field, error)
}

type Service struct {
	repo   Repository
	fields FieldProvider
}

func NewService(repo Repository, fields FieldProvider) *Service {
	return &Service{repo: repo, fields: fields}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateCropRequest,
) (*Crop, error) {
	if _, err := s.fields.GetOwned(ctx, userID, req.FieldID); err != nil {
		return nil, err
	}

	sowingDate, err := parseDate(req.SowingDate, "sowing_date")
	if err != nil {
		return nil, err
	}

	crop := &Crop{
		ID:                 uuid.New().String(),
		UserID:             userID,
		FieldID:            req.FieldID,
		CropName:           req.CropName,
		CropVariety:        req.CropVariety,
		SowingDate:         sowingDate,
		IrrigationMethod:   "manual",
		SowingNitrogen:     req.SowingNitrogen,
		SowingPhosphorus:   req.SowingPhosphorus,
		SowingPotassium:    req.SowingPotassium,
		SowingPH:           req.SowingPH,
		SowingTemperature:  req.SowingTemperature,
		SowingHumidity:     req.SowingHumidity,
		SowingRainfall:     req.SowingRainfall,
		SowingSoilMoisture: req.SowingSoilMoisture,
	}

	if req.IrrigationMethod != nil && *req.IrrigationMethod != "" {
		crop.IrrigationMethod = *req.IrrigationMethod
	}

	if req.ExpectedHarvestDate != nil {
		expected, err := parseDate(*req.ExpectedHarvestDate, "expected_harvest_date")
		if err != nil {
			return nil, err
		}
		if !expected.After(sowingDate) {
			return nil, fmt.Errorf(
				"expected_harvest_date must be after sowing_date: %w",
				core.ErrInvalidInput,
			)
		}
		crop.ExpectedHarvestDate = &expected
	}

	if err := s.repo.Create(ctx, crop); err != nil {
		return nil, err
	}

	return crop, nil
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	params ListCropsParams,
) ([]Crop, error) {
	return s.repo.ListForOwner(ctx, userID, params)
}

// GetOwned fetches a crop and enforces ownership the same way the field
// service does.
func (s *Service) GetOwned(
	ctx context.Context,
	userID, cropID string,
) (*Crop, error) {
	crop, err := s.repo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}

	if crop.UserID != userID {
		return nil, fmt.Errorf("get crop: %w", core.ErrForbidden)
	}

	return crop, nil
}

func (s *Service) GetDetail(
	ctx context.Context,
	userID, cropID string,
) (*Crop, []GrowthStage, error) {
	crop, err := s.GetOwned(ctx, userID, cropID)
	if err != nil {
		return nil, nil, err
	}

	stages, err := s.repo.ListGrowthStages(ctx, cropID)
	if err != nil {
		return nil, nil, err
	}

	return crop, stages, nil
}

func (s *Service) AddIrrigation(
	ctx context.Context,
	userID, cropID string,
	req AddIrrigationRequest,
) (*IrrigationRecord, float64, error) {
	crop, err := s.GetOwned(ctx, userID, cropID)
	if err != nil {
		return nil, 0, err
	}

	date, err := parseDate(req.IrrigationDate, "irrigation_date")
	if err != nil {
		return nil, 0, err
	}

	record := &IrrigationRecord{
		ID:               uuid.New().String(),
		CropID:           crop.ID,
		IrrigationDate:   date,
		AmountMM:         req.AmountMM,
		IrrigationMethod: crop.IrrigationMethod,
		DurationMinutes:  req.DurationMinutes,
		Notes:            req.Notes,
	}
	if req.IrrigationMethod != nil && *req.IrrigationMethod != "" {
		record.IrrigationMethod = *req.IrrigationMethod
	}

	newTotal, err := s.repo.AddIrrigation(ctx, record)
	if err != nil {
		return nil, 0, err
	}

	return record, newTotal, nil
}

func (s *Service) AddFertilizer(
	ctx context.Context,
	userID, cropID string,
	req AddFertilizerRequest,
) (*FertilizerRecord, *NutrientTotals, error) {
	crop, err := s.GetOwned(ctx, userID, cropID)
	if err != nil {
		return nil, nil, err
	}

	date, err := parseDate(req.ApplicationDate, "application_date")
	if err != nil {
		return nil, nil, err
	}

	record := &FertilizerRecord{
		ID:                uuid.New().String(),
		CropID:            crop.ID,
		ApplicationDate:   date,
		NutrientType:      req.NutrientType,
		AmountKgPerHa:     req.AmountKgPerHa,
		ApplicationMethod: req.ApplicationMethod,
		FertilizerName:    req.FertilizerName,
		Notes:             req.Notes,
	}

	totals, err := s.repo.AddFertilizer(ctx, record)
	if err != nil {
		return nil, nil, err
	}

	return record, totals, nil
}

func (s *Service) AddGrowthStage(
	ctx context.Context,
	userID, cropID string,
	req AddGrowthStageRequest,
) (*GrowthStage, error) {
	crop, err := s.GetOwned(ctx, userID, cropID)
	if err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	stage := &GrowthStage{
		ID:           uuid.New().String(),
		CropID:       crop.ID,
		StageName:    req.StageName,
		StartDate:    startDate,
		DurationDays: req.DurationDays,
		KcValue:      req.KcValue,
		Notes:        req.Notes,
	}

	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		if endDate.Before(startDate) {
			return nil, fmt.Errorf(
				"end_date must not be before start_date: %w",
				core.ErrInvalidInput,
			)
		}
		stage.EndDate = &endDate
	}

	if err := s.repo.AddGrowthStage(ctx, stage); err != nil {
		return nil, err
	}

	return stage, nil
}

func parseDate(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"invalid %s: %w",
			fieldName,
			core.ErrInvalidInput,
		)
	}
	return t, nil
}
