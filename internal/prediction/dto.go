// AngelaMos | 2026
// dto.go

package prediction

import (
	"time"
)

type CreatePredictionRequest struct {
	CropID              string   `json:"crop_id"               validate:"required,uuid4"`
	TempCelsius         *float64 `json:"temp_celsius"`
	HumidityPercent     *float64 `json:"humidity_percent"      validate:"omitempty,gte=0,lte=100"`
	RainfallMM          *float64 `json:"rainfall_mm"           validate:"omitempty,gte=0"`
	SoilMoisturePercent *float64 `json:"soil_moisture_percent" validate:"omitempty,gte=0,lte=100"`
	PestDiseasePressure string   `json:"pest_disease_pressure" validate:"omitempty,oneof=low medium high"`
}

type RecordActualRequest struct {
	ActualYield       float64 `json:"actual_yield"        validate:"required,gt=0"`
	ActualHarvestDate string  `json:"actual_harvest_date" validate:"required,datetime=2006-01-02"`
	ActualQuality     *string `json:"actual_quality"      validate:"omitempty,max=20"`
}

type ListPredictionsParams struct {
	CropID string
	Limit  int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (p *ListPredictionsParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
}

const dateLayout = "2006-01-02"

type PredictionResponse struct {
	ID                      string    `json:"id"`
	FieldID                 string    `json:"field_id"`
	CropID                  string    `json:"crop_id"`
	PredictionDate          string    `json:"prediction_date"`
	DaysAfterSowing         *int      `json:"days_after_sowing,omitempty"`
	CurrentStage            *string   `json:"current_stage,omitempty"`
	TempCelsius             *float64  `json:"temp_celsius,omitempty"`
	HumidityPercent         *float64  `json:"humidity_percent,omitempty"`
	RainfallMM              *float64  `json:"rainfall_mm,omitempty"`
	SoilMoisturePercent     *float64  `json:"soil_moisture_percent,omitempty"`
	IrrigationTotalMM       *float64  `json:"irrigation_total_mm,omitempty"`
	FertilizerAppliedKg     *float64  `json:"fertilizer_applied_kg,omitempty"`
	PestDiseasePressure     string    `json:"pest_disease_pressure"`
	ExpectedYieldPerHectare *float64  `json:"expected_yield_per_hectare,omitempty"`
	TotalExpectedYield      *float64  `json:"total_expected_yield,omitempty"`
	QualityGrade            *string   `json:"quality_grade,omitempty"`
	PredictedHarvestDate    *string   `json:"predicted_harvest_date,omitempty"`
	ConfidenceScore         *float64  `json:"confidence_score,omitempty"`
	ModelVersion            string    `json:"model_version"`
	ActualYield             *float64  `json:"actual_yield,omitempty"`
	ActualHarvestDate       *string   `json:"actual_harvest_date,omitempty"`
	ActualQuality           *string   `json:"actual_quality,omitempty"`
	AccuracyScore           *float64  `json:"accuracy_score,omitempty"`
	Status                  string    `json:"status"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func toPredictionResponse(p *Prediction) PredictionResponse {
	resp := PredictionResponse{
		ID:                      p.ID,
		FieldID:                 p.FieldID,
		CropID:                  p.CropID,
		PredictionDate:          p.PredictionDate.Format(dateLayout),
		DaysAfterSowing:         p.DaysAfterSowing,
		CurrentStage:            p.CurrentStage,
		TempCelsius:             p.TempCelsius,
		HumidityPercent:         p.HumidityPercent,
		RainfallMM:              p.RainfallMM,
		SoilMoisturePercent:     p.SoilMoisturePercent,
		IrrigationTotalMM:       p.IrrigationTotalMM,
		FertilizerAppliedKg:     p.FertilizerAppliedKg,
		PestDiseasePressure:     p.PestDiseasePressure,
		ExpectedYieldPerHectare: p.ExpectedYieldPerHectare,
		TotalExpectedYield:      p.TotalExpectedYield,
		QualityGrade:            p.QualityGrade,
		ConfidenceScore:         p.ConfidenceScore,
		ModelVersion:            p.ModelVersion,
		ActualYield:             p.ActualYield,
		ActualQuality:           p.ActualQuality,
		AccuracyScore:           p.AccuracyScore,
		Status:                  p.Status,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
	if p.PredictedHarvestDate != nil {
		s := p.PredictedHarvestDate.Format(dateLayout)
		resp.PredictedHarvestDate = &s
	}
	if p.ActualHarvestDate != nil {
		s := p.ActualHarvestDate.Format(dateLayout)
		resp.ActualHarvestDate = &s
	}
	return resp
}

type PredictionsResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
	Count       int                  `json:"count"`
}
