// AngelaMos | 2026
// service.go

package field

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agrovia/farmconnect/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateFieldRequest,
) (*Field, error) {
	field := &Field{
		ID:                      uuid.New().String(),
		UserID:                  userID,
		FieldName:               req.FieldName,
		Coordinates:             Coordinates(req.Coordinates),
		AreaHectares:            req.AreaHectares,
		SoilType:                req.SoilType,
		Elevation:               req.Elevation,
		SlopePercentage:         req.SlopePercentage,
		DrainageType:            req.DrainageType,
		SoilNitrogen:            req.SoilNitrogen,
		SoilPhosphorus:          req.SoilPhosphorus,
		SoilPotassium:           req.SoilPotassium,
		SoilPH:                  req.SoilPH,
		OrganicMatterPercentage: req.OrganicMatterPercentage,
		SoilMoisturePercentage:  req.SoilMoisturePercentage,
		AverageTemperature:      req.AverageTemperature,
		AnnualRainfall:          req.AnnualRainfall,
		AverageHumidity:         req.AverageHumidity,
	}

	if err := s.repo.Create(ctx, field); err != nil {
		return nil, err
	}

	return field, nil
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	params ListFieldsParams,
) ([]Field, error) {
	return s.repo.ListForOwner(ctx, userID, params)
}

// GetOwned fetches a field and enforces ownership. Non-owners get
// ErrForbidden rather than ErrNotFound so a caller can distinguish a
// missing field from someone else's.
func (s *Service) GetOwned(
	ctx context.Context,
	userID, fieldID string,
) (*Field, error) {
	field, err := s.repo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if field.UserID != userID {
		return nil, fmt.Errorf("get field: %w", core.ErrForbidden)
	}

	return field, nil
}

func (s *Service) Delete(ctx context.Context, userID, fieldID string) error {
	if _, err := s.GetOwned(ctx, userID, fieldID); err != nil {
		return err
	}

	return s.repo.SoftDelete(ctx, fieldID)
}
