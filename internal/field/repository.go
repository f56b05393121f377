// AngelaMos | 2026
// repository.go

package field

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agrovia/farmconnect/internal/core"
)

type Repository interface {
	Create(ctx context.Context, field *Field) error
	GetByID(ctx context.Context, id string) (*Field, error)
	ListForOwner(
		ctx context.Context,
		userID string,
		params ListFieldsParams,
	) ([]Field, error)
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const fieldColumns = `
	id, user_id, field_name, coordinates, area_hectares, soil_type,
	elevation, slope_percentage, drainage_type, soil_nitrogen,
	soil_phosphorus, soil_potassium, soil_ph, organic_matter_percentage,
	soil_moisture_percentage, average_temperature, annual_rainfall,
	average_humidity, status, created_at, updated_at`

func (r *repository) Create(ctx context.Context, field *Field) error {
	query := `
		INSERT INTO fields (
			id, user_id, field_name, coordinates, area_hectares, soil_type,
			elevation, slope_percentage, drainage_type, soil_nitrogen,
			soil_phosphorus, soil_potassium, soil_ph,
			organic_matter_percentage, soil_moisture_percentage,
			average_temperature, annual_rainfall, average_humidity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18)
		RETURNING status, created_at, updated_at`

	err := r.db.GetContext(ctx, field, query,
		field.ID,
		field.UserID,
		field.FieldName,
		field.Coordinates,
		field.AreaHectares,
		field.SoilType,
		field.Elevation,
		field.SlopePercentage,
		field.DrainageType,
		field.SoilNitrogen,
		field.SoilPhosphorus,
		field.SoilPotassium,
		field.SoilPH,
		field.OrganicMatterPercentage,
		field.SoilMoisturePercentage,
		field.AverageTemperature,
		field.AnnualRainfall,
		field.AverageHumidity,
	)
	if err != nil {
		return fmt.Errorf("create field: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Field, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM fields
		WHERE id = $1 AND status != 'deleted'`, fieldColumns)

	var field Field
	err := r.db.GetContext(ctx, &field, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get field: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get field: %w", err)
	}

	return &field, nil
}

func (r *repository) ListForOwner(
	ctx context.Context,
	userID string,
	params ListFieldsParams,
) ([]Field, error) {
	params.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM fields
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT $2`, fieldColumns)

	fields := []Field{}
	err := r.db.SelectContext(ctx, &fields, query, userID, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	return fields, nil
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE fields
		SET status = 'deleted'
		WHERE id = $1 AND status != 'deleted'`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete field: %w", core.ErrNotFound)
	}

	return nil
}
