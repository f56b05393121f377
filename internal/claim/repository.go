// AngelaMos | 2026
// repository.go

package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agrovia/farmconnect/internal/core"
)

type Repository interface {
	Create(ctx context.Context, claim *Claim) error
	GetByID(ctx context.Context, id string) (*Claim, error)
	GetByReference(ctx context.Context, reference string) (*Claim, error)
	ListForOwner(
		ctx context.Context,
		userID string,
		params ListClaimsParams,
	) ([]Claim, error)
	ListAll(ctx context.Context, params ListClaimsParams) ([]Claim, error)
	UpdateReview(ctx context.Context, claim *Claim) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const claimColumns = `
	id, user_id, field_id, crop_id, farmer_name, farmer_email,
	farmer_phone, farm_location, farmer_address, incident_date,
	damage_type, crop_type, affected_area_hectares, estimated_loss_amount,
	severity_level, damage_description, weather_condition, damage_duration,
	selected_scheme_id, scheme_name, claim_amount, claim_status,
	claim_reference_number, government_notes, approved_amount,
	approval_date, payment_date, created_at, updated_at`

func (r *repository) Create(ctx context.Context, claim *Claim) error {
	query := `
		INSERT INTO climate_damage_claims (
			id, user_id, field_id, crop_id, farmer_name, farmer_email,
			farmer_phone, farm_location, farmer_address, incident_date,
			damage_type, crop_type, affected_area_hectares,
			estimated_loss_amount, severity_level, damage_description,
			weather_condition, damage_duration, selected_scheme_id,
			scheme_name, claim_amount, claim_reference_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING claim_status, created_at, updated_at`

	err := r.db.GetContext(ctx, claim, query,
		claim.ID,
		claim.UserID,
		claim.FieldID,
		claim.CropID,
		claim.FarmerName,
		claim.FarmerEmail,
		claim.FarmerPhone,
		claim.FarmLocation,
		claim.FarmerAddress,
		claim.IncidentDate,
		claim.DamageType,
		claim.CropType,
		claim.AffectedAreaHectares,
		claim.EstimatedLossAmount,
		claim.SeverityLevel,
		claim.DamageDescription,
		claim.WeatherCondition,
		claim.DamageDuration,
		claim.SelectedSchemeID,
		claim.SchemeName,
		claim.ClaimAmount,
		claim.ReferenceNumber,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create claim: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create claim: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM climate_damage_claims
		WHERE id = $1`, claimColumns)

	var claim Claim
	err := r.db.GetContext(ctx, &claim, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get claim: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}

	return &claim, nil
}

func (r *repository) GetByReference(
	ctx context.Context,
	reference string,
) (*Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM climate_damage_claims
		WHERE claim_reference_number = $1`, claimColumns)

	var claim Claim
	err := r.db.GetContext(ctx, &claim, query, reference)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get claim by reference: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get claim by reference: %w", err)
	}

	return &claim, nil
}

func (r *repository) ListForOwner(
	ctx context.Context,
	userID string,
	params ListClaimsParams,
) ([]Claim, error) {
	params.Normalize()

	var query string
	var args []any

	if params.Status != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM climate_damage_claims
			WHERE user_id = $1 AND claim_status = $2
			ORDER BY created_at DESC
			LIMIT $3`, claimColumns)
		args = []any{userID, params.Status, params.Limit}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM climate_damage_claims
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2`, claimColumns)
		args = []any{userID, params.Limit}
	}

	claims := []Claim{}
	if err := r.db.SelectContext(ctx, &claims, query, args...); err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	return claims, nil
}

func (r *repository) ListAll(
	ctx context.Context,
	params ListClaimsParams,
) ([]Claim, error) {
	params.Normalize()

	var query string
	var args []any

	if params.Status != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM climate_damage_claims
			WHERE claim_status = $1
			ORDER BY created_at DESC
			LIMIT $2`, claimColumns)
		args = []any{params.Status, params.Limit}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM climate_damage_claims
			ORDER BY created_at DESC
			LIMIT $1`, claimColumns)
		args = []any{params.Limit}
	}

	claims := []Claim{}
	if err := r.db.SelectContext(ctx, &claims, query, args...); err != nil {
		return nil, fmt.Errorf("list all claims: %w", err)
	}

	return claims, nil
}

func (r *repository) UpdateReview(ctx context.Context, claim *Claim) error {
	query := `
		UPDATE climate_damage_claims
		SET claim_status = $2, government_notes = $3, approved_amount = $4,
		    approval_date = $5, payment_date = $6
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &claim.UpdatedAt, query,
		claim.ID,
		claim.ClaimStatus,
		claim.GovernmentNotes,
		claim.ApprovedAmount,
		claim.ApprovalDate,
		claim.PaymentDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update claim review: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update claim review: %w", err)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
