// AngelaMos | 2026
// service.go

package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrovia/farmconnect/internal/core"
)

var ErrInvalidTransition = errors.New("invalid claim status transition")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit creates a claim with a freshly generated reference number. The
// unique index on the reference column catches the rare collision; one
// regenerate-and-retry covers it.
func (s *Service) Submit(
	ctx context.Context,
	userID string,
	req SubmitClaimRequest,
) (*Claim, error) {
	incidentDate, err := time.Parse(dateLayout, req.IncidentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid incident_date: %w", core.ErrInvalidInput)
	}

	claim := &Claim{
		ID:                   uuid.New().String(),
		UserID:               userID,
		FieldID:              req.FieldID,
		CropID:               req.CropID,
		FarmerName:           req.FarmerName,
		FarmerEmail:          req.FarmerEmail,
		FarmerPhone:          req.FarmerPhone,
		FarmLocation:         req.FarmLocation,
		FarmerAddress:        req.FarmerAddress,
		IncidentDate:         incidentDate,
		DamageType:           req.DamageType,
		CropType:             req.CropType,
		AffectedAreaHectares: req.AffectedAreaHectares,
		EstimatedLossAmount:  req.EstimatedLossAmount,
		SeverityLevel:        req.SeverityLevel,
		DamageDescription:    req.DamageDescription,
		WeatherCondition:     req.WeatherCondition,
		DamageDuration:       req.DamageDuration,
		SelectedSchemeID:     req.SelectedSchemeID,
		SchemeName:           req.SchemeName,
		ClaimAmount:          req.ClaimAmount,
	}

	for attempt := 0; attempt < 2; attempt++ {
		reference, refErr := GenerateReference(time.Now())
		if refErr != nil {
			return nil, refErr
		}
		claim.ReferenceNumber = reference

		createErr := s.repo.Create(ctx, claim)
		if createErr == nil {
			return claim, nil
		}
		if !errors.Is(createErr, core.ErrDuplicateKey) {
			return nil, createErr
		}
		err = createErr
	}

	return nil, fmt.Errorf("submit claim: reference collision: %w", err)
}

func (s *Service) ListForOwner(
	ctx context.Context,
	userID string,
	params ListClaimsParams,
) ([]Claim, error) {
	return s.repo.ListForOwner(ctx, userID, params)
}

func (s *Service) ListAll(
	ctx context.Context,
	params ListClaimsParams,
) ([]Claim, error) {
	return s.repo.ListAll(ctx, params)
}

// GetOwned returns a claim only to its submitter.
func (s *Service) GetOwned(
	ctx context.Context,
	userID, claimID string,
) (*Claim, error) {
	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	if claim.UserID != userID {
		return nil, fmt.Errorf("get claim: %w", core.ErrForbidden)
	}

	return claim, nil
}

// TrackByReference is the public lookup path. It exposes a claim by its
// reference number without requiring the caller to be the submitter, so
// a farmer can check status from any device.
func (s *Service) TrackByReference(
	ctx context.Context,
	reference string,
) (*Claim, error) {
	return s.repo.GetByReference(ctx, reference)
}

// Review advances a claim through the status machine. An approval
// stamps the approval date; completion stamps the payment date.
func (s *Service) Review(
	ctx context.Context,
	claimID string,
	req ReviewClaimRequest,
) (*Claim, error) {
	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(claim.ClaimStatus, req.Status) {
		return nil, fmt.Errorf(
			"cannot move claim from %s to %s: %w",
			claim.ClaimStatus,
			req.Status,
			ErrInvalidTransition,
		)
	}

	claim.ClaimStatus = req.Status
	if req.GovernmentNotes != nil {
		claim.GovernmentNotes = req.GovernmentNotes
	}

	now := time.Now()
	switch req.Status {
	case StatusApproved:
		claim.ApprovalDate = &now
		if req.ApprovedAmount != nil {
			claim.ApprovedAmount = req.ApprovedAmount
		} else {
			claim.ApprovedAmount = &claim.EstimatedLossAmount
		}
	case StatusCompleted:
		claim.PaymentDate = &now
	}

	if err := s.repo.UpdateReview(ctx, claim); err != nil {
		return nil, err
	}

	return claim, nil
}
