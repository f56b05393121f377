// AngelaMos | 2026
// entity.go

package crop

import (
	"time"
)

type Crop struct {
	ID                     string     `db:"id"`
	UserID                 string     `db:"user_id"`
	FieldID                string     `db:"field_id"`
	CropName               string     `db:"crop_name"`
	CropVariety            *string    `db:"crop_variety"`
	SowingDate             time.Time  `db:"sowing_date"`
	ExpectedHarvestDate    *time.Time `db:"expected_harvest_date"`
	ActualHarvestDate      *time.Time `db:"actual_harvest_date"`
	SowingNitrogen         *float64   `db:"sowing_nitrogen"`
	SowingPhosphorus       *float64   `db:"sowing_phosphorus"`
	SowingPotassium        *float64   `db:"sowing_potassium"`
	SowingPH               *float64   `db:"sowing_ph"`
	SowingTemperature      *float64   `db:"sowing_temperature"`
	SowingHumidity         *float64   `db:"sowing_humidity"`
	SowingRainfall         *float64   `db:"sowing_rainfall"`
	SowingSoilMoisture     *float64   `db:"sowing_soil_moisture"`
	TotalWaterUsed         float64    `db:"total_water_used"`
	IrrigationMethod       string     `db:"irrigation_method"`
	TotalNitrogenApplied   float64    `db:"total_nitrogen_applied"`
	TotalPhosphorusApplied float64    `db:"total_phosphorus_applied"`
	TotalPotassiumApplied  float64    `db:"total_potassium_applied"`
	CurrentStage           string     `db:"current_stage"`
	CropStatus             string     `db:"crop_status"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

type IrrigationRecord struct {
	ID               string    `db:"id"`
	CropID           string    `db:"crop_id"`
	IrrigationDate   time.Time `db:"irrigation_date"`
	AmountMM         float64   `db:"amount_mm"`
	IrrigationMethod string    `db:"irrigation_method"`
	DurationMinutes  *int      `db:"duration_minutes"`
	Notes            *string   `db:"notes"`
	RecordedAt       time.Time `db:"recorded_at"`
}

type FertilizerRecord struct {
	ID                string    `db:"id"`
	CropID            string    `db:"crop_id"`
	ApplicationDate   time.Time `db:"application_date"`
	NutrientType      string    `db:"nutrient_type"`
	AmountKgPerHa     float64   `db:"amount_kg_per_ha"`
	ApplicationMethod *string   `db:"application_method"`
	FertilizerName    *string   `db:"fertilizer_name"`
	Notes             *string   `db:"notes"`
	RecordedAt        time.Time `db:"recorded_at"`
}

type GrowthStage struct {
	ID           string     `db:"id"`
	CropID       string     `db:"crop_id"`
	StageName    string     `db:"stage_name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	DurationDays *int       `db:"duration_days"`
	KcValue      *float64   `db:"kc_value"`
	Notes        *string    `db:"notes"`
	CreatedAt    time.Time  `db:"created_at"`
}

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusHarvested = "harvested"
)

const (
	NutrientNitrogen   = "nitrogen"
	NutrientPhosphorus = "phosphorus"
	NutrientPotassium  = "potassium"
	NutrientNPK        = "npk"
)
