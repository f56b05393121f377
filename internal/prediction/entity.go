// AngelaMos | 2026
// entity.go

package prediction

import (
	"time"
)

type Prediction struct {
	ID                      string     `db:"id"`
	UserID                  string     `db:"user_id"`
	FieldID                 string     `db:"field_id"`
	CropID                  string     `db:"crop_id"`
	PredictionDate          time.Time  `db:"prediction_date"`
	DaysAfterSowing         *int       `db:"days_after_sowing"`
	CurrentStage            *string    `db:"current_stage"`
	TempCelsius             *float64   `db:"temp_celsius"`
	HumidityPercent         *float64   `db:"humidity_percent"`
	RainfallMM              *float64   `db:"rainfall_mm"`
	SoilMoisturePercent     *float64   `db:"soil_moisture_percent"`
	IrrigationTotalMM       *float64   `db:"irrigation_total_mm"`
	FertilizerAppliedKg     *float64   `db:"fertilizer_applied_kg"`
	PestDiseasePressure     string     `db:"pest_disease_pressure"`
	ExpectedYieldPerHectare *float64   `db:"expected_yield_per_hectare"`
	TotalExpectedYield      *float64   `db:"total_expected_yield"`
	QualityGrade            *string    `db:"quality_grade"`
	PredictedHarvestDate    *time.Time `db:"predicted_harvest_date"`
	ConfidenceScore         *float64   `db:"confidence_score"`
	ModelVersion            string     `db:"model_version"`
	ActualYield             *float64   `db:"actual_yield"`
	ActualHarvestDate       *time.Time `db:"actual_harvest_date"`
	ActualQuality           *string    `db:"actual_quality"`
	AccuracyScore           *float64   `db:"accuracy_score"`
	Status                  string     `db:"status"`
	CreatedAt               time.Time  `db:"created_at"`
	UpdatedAt               time.Time  `db:"updated_at"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

const (
	PressureLow    = "low"
	PressureMedium = "medium"
	PressureHigh   = "high"
)
