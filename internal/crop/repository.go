// AngelaMos | 2026
// repository.go

package crop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/agrovia/farmconnect/internal/core"
)

type NutrientTotals struct {
	Nitrogen   float64 `db:"total_nitrogen_applied"`
	Phosphorus float64 `db:"total_phosphorus_applied"`
	Potassium  float64 `db:"total_potassium_applied"`
}

type Repository interface {
	Create(ctx context.Context, crop *Crop) error
	GetByID(ctx context.Context, id string) (*Crop, error)
	ListForOwner(
		ctx context.Context,
		userID string,
		params ListCropsParams,
	) ([]Crop, error)
	AddIrrigation(
		ctx context.Context,
		record *IrrigationRecord,
	) (float64, error)
	AddFertilizer(
		ctx context.Context,
		record *FertilizerRecord,
	) (*NutrientTotals, error)
	AddGrowthStage(ctx context.Context, stage *GrowthStage) error
	ListGrowthStages(ctx context.Context, cropID string) ([]GrowthStage, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const cropColumns = `
	id, user_id, field_id, crop_name, crop_variety, sowing_date,
	expected_harvest_date, actual_harvest_date, sowing_nitrogen,
	sowing_phosphorus, sowing_potassium, sowing_ph, sowing_temperature,
	sowing_humidity, sowing_rainfall, sowing_soil_moisture,
	total_water_used, irrigation_method, total_nitrogen_applied,
	total_phosphorus_applied, total_potassium_applied, current_stage,
	crop_status, created_at, updated_at`

func (r *repository) Create(ctx context.Context, crop *Crop) error {
	query := `
		INSERT INTO crops (
			id, user_id, field_id, crop_name, crop_variety, sowing_date,
			expected_harvest_date, irrigation_method, sowing_nitrogen,
			sowing_phosphorus, sowing_potassium, sowing_ph,
			sowing_temperature, sowing_humidity, sowing_rainfall,
			sowing_soil_moisture
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16)
		RETURNING total_water_used, total_nitrogen_applied,
		          total_phosphorus_applied, total_potassium_applied,
		          current_stage, crop_status, created_at, updated_at`

	err := r.db.GetContext(ctx, crop, query,
		crop.ID,
		crop.UserID,
		crop.FieldID,
		crop.CropName,
		crop.CropVariety,
		crop.SowingDate,
		crop.ExpectedHarvestDate,
		crop.IrrigationMethod,
		crop.SowingNitrogen,
		crop.SowingPhosphorus,
		crop.SowingPotassium,
		crop.SowingPH,
		crop.SowingTemperature,
		crop.SowingHumidity,
		crop.SowingRainfall,
		crop.SowingSoilMoisture,
	)
	if err != nil {
		return fmt.Errorf("create crop: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Crop, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM crops
		WHERE id = $1`, cropColumns)

	var crop Crop
	err := r.db.GetContext(ctx, &crop, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get crop: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get crop: %w", err)
	}

	return &crop, nil
}

func (r *repository) ListForOwner(
	ctx context.Context,
	userID string,
	params ListCropsParams,
) ([]Crop, error) {
	params.Normalize()

	var query string
	var args []any

	if params.FieldID != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM crops
			WHERE user_id = $1 AND field_id = $2
			ORDER BY created_at DESC
			LIMIT $3`, cropColumns)
		args = []any{userID, params.FieldID, params.Limit}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM crops
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2`, cropColumns)
		args = []any{userID, params.Limit}
	}

	crops := []Crop{}
	if err := r.db.SelectContext(ctx, &crops, query, args...); err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}

	return crops, nil
}

// AddIrrigation inserts the event row and bumps the crop's running
// water total in one transaction. The increment happens in SQL, not as
// a read-modify-write, so concurrent appends cannot lose updates.
func (r *repository) AddIrrigation(
	ctx context.Context,
	record *IrrigationRecord,
) (float64, error) {
	var newTotal float64

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO irrigation_records (
				id, crop_id, irrigation_date, amount_mm,
				irrigation_method, duration_minutes, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING recorded_at`

		if err := tx.GetContext(ctx, &record.RecordedAt, insert,
			record.ID,
			record.CropID,
			record.IrrigationDate,
			record.AmountMM,
			record.IrrigationMethod,
			record.DurationMinutes,
			record.Notes,
		); err != nil {
			return fmt.Errorf("insert irrigation record: %w", err)
		}

		update := `
			UPDATE crops
			SET total_water_used = total_water_used + $2
			WHERE id = $1
			RETURNING total_water_used`

		if err := tx.GetContext(ctx, &newTotal, update,
			record.CropID,
			record.AmountMM,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("update water total: %w", core.ErrNotFound)
			}
			return fmt.Errorf("update water total: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newTotal, nil
}

// AddFertilizer mirrors AddIrrigation. An npk application bumps all
// three nutrient totals by the same amount; a single-nutrient one bumps
// only its own column.
func (r *repository) AddFertilizer(
	ctx context.Context,
	record *FertilizerRecord,
) (*NutrientTotals, error) {
	setClause, err := nutrientSetClause(record.NutrientType)
	if err != nil {
		return nil, err
	}

	var totals NutrientTotals

	err = core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO fertilizer_records (
				id, crop_id, application_date, nutrient_type,
				amount_kg_per_ha, application_method, fertilizer_name, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING recorded_at`

		if err := tx.GetContext(ctx, &record.RecordedAt, insert,
			record.ID,
			record.CropID,
			record.ApplicationDate,
			record.NutrientType,
			record.AmountKgPerHa,
			record.ApplicationMethod,
			record.FertilizerName,
			record.Notes,
		); err != nil {
			return fmt.Errorf("insert fertilizer record: %w", err)
		}

		update := fmt.Sprintf(`
			UPDATE crops
			SET %s
			WHERE id = $1
			RETURNING total_nitrogen_applied, total_phosphorus_applied,
			          total_potassium_applied`, setClause)

		if err := tx.GetContext(ctx, &totals, update,
			record.CropID,
			record.AmountKgPerHa,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf(
					"update nutrient totals: %w",
					core.ErrNotFound,
				)
			}
			return fmt.Errorf("update nutrient totals: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &totals, nil
}

func nutrientSetClause(nutrientType string) (string, error) {
	switch nutrientType {
	case NutrientNitrogen:
		return "total_nitrogen_applied = total_nitrogen_applied + $2", nil
	case NutrientPhosphorus:
		return "total_phosphorus_applied = total_phosphorus_applied + $2", nil
	case NutrientPotassium:
		return "total_potassium_applied = total_potassium_applied + $2", nil
	case NutrientNPK:
		return `total_nitrogen_applied = total_nitrogen_applied + $2,
			total_phosphorus_applied = total_phosphorus_applied + $2,
			total_potassium_applied = total_potassium_applied + $2`, nil
	default:
		return "", fmt.Errorf(
			"invalid nutrient type %q: %w",
			nutrientType,
			core.ErrInvalidInput,
		)
	}
}

// AddGrowthStage records the stage and advances the crop's
// current_stage marker together.
func (r *repository) AddGrowthStage(
	ctx context.Context,
	stage *GrowthStage,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO crop_growth_stages (
				id, crop_id, stage_name, start_date, end_date,
				duration_days, kc_value, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at`

		if err := tx.GetContext(ctx, &stage.CreatedAt, insert,
			stage.ID,
			stage.CropID,
			stage.StageName,
			stage.StartDate,
			stage.EndDate,
			stage.DurationDays,
			stage.KcValue,
			stage.Notes,
		); err != nil {
			return fmt.Errorf("insert growth stage: %w", err)
		}

		update := `
			UPDATE crops
			SET current_stage = $2
			WHERE id = $1`

		result, err := tx.ExecContext(ctx, update, stage.CropID, stage.StageName)
		if err != nil {
			return fmt.Errorf("update current stage: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update current stage: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("update current stage: %w", core.ErrNotFound)
		}

		return nil
	})
}

func (r *repository) ListGrowthStages(
	ctx context.Context,
	cropID string,
) ([]GrowthStage, error) {
	query := `
		SELECT id, crop_id, stage_name, start_date, end_date,
		       duration_days, kc_value, notes, created_at
		FROM crop_growth_stages
		WHERE crop_id = $1
		ORDER BY start_date ASC, created_at ASC`

	stages := []GrowthStage{}
	if err := r.db.SelectContext(ctx, &stages, query, cropID); err != nil {
		return nil, fmt.Errorf("list growth stages: %w", err)
	}

	return stages, nil
}
