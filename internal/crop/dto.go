// AngelaMos | 2026
// dto.go

package crop

import (
	"time"
)

type CreateCropRequest struct {
	FieldID             string   `json:"field_id"              validate:"required,uuid4"`
	CropName            string   `json:"crop_name"             validate:"required,min=1,max=100"`
	CropVariety         *string  `json:"crop_variety"          validate:"omitempty,max=100"`
	SowingDate          string   `json:"sowing_date"           validate:"required,datetime=2006-01-02"`
	ExpectedHarvestDate *string  `json:"expected_harvest_date" validate:"omitempty,datetime=2006-01-02"`
	IrrigationMethod    *string  `json:"irrigation_method"     validate:"omitempty,max=50"`
	SowingNitrogen      *float64 `json:"sowing_nitrogen"       validate:"omitempty,gte=0"`
	SowingPhosphorus    *float64 `json:"sowing_phosphorus"     validate:"omitempty,gte=0"`
	SowingPotassium     *float64 `json:"sowing_potassium"      validate:"omitempty,gte=0"`
	SowingPH            *float64 `json:"sowing_ph"             validate:"omitempty,gte=0,lte=14"`
	SowingTemperature   *float64 `json:"sowing_temperature"`
	SowingHumidity      *float64 `json:"sowing_humidity"       validate:"omitempty,gte=0,lte=100"`
	SowingRainfall      *float64 `json:"sowing_rainfall"       validate:"omitempty,gte=0"`
	SowingSoilMoisture  *float64 `json:"sowing_soil_moisture"  validate:"omitempty,gte=0,lte=100"`
}

type AddIrrigationRequest struct {
	IrrigationDate   string  `json:"irrigation_date"   validate:"required,datetime=2006-01-02"`
	AmountMM         float64 `json:"amount_mm"         validate:"required,gt=0"`
	IrrigationMethod *string `json:"irrigation_method" validate:"omitempty,max=50"`
	DurationMinutes  *int    `json:"duration_minutes"  validate:"omitempty,gt=0"`
	Notes            *string `json:"notes"`
}

type AddFertilizerRequest struct {
	ApplicationDate   string  `json:"application_date"   validate:"required,datetime=2006-01-02"`
	NutrientType      string  `json:"nutrient_type"      validate:"required,oneof=nitrogen phosphorus potassium npk"`
	AmountKgPerHa     float64 `json:"amount_kg_per_ha"   validate:"required,gt=0"`
	ApplicationMethod *string `json:"application_method" validate:"omitempty,max=50"`
	FertilizerName    *string `json:"fertilizer_name"    validate:"omitempty,max=100"`
	Notes             *string `json:"notes"`
}

type AddGrowthStageRequest struct {
	StageName    string   `json:"stage_name"    validate:"required,min=1,max=50"`
	StartDate    string   `json:"start_date"    validate:"required,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date"      validate:"omitempty,datetime=2006-01-02"`
	DurationDays *int     `json:"duration_days" validate:"omitempty,gt=0"`
	KcValue      *float64 `json:"kc_value"      validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes"`
}

type ListCropsParams struct {
	FieldID string
	Limit   int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (p *ListCropsParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
}

type CropResponse struct {
	ID                     string     `json:"id"`
	FieldID                string     `json:"field_id"`
	CropName               string     `json:"crop_name"`
	CropVariety            *string    `json:"crop_variety,omitempty"`
	SowingDate             string     `json:"sowing_date"`
	ExpectedHarvestDate    *string    `json:"expected_harvest_date,omitempty"`
	ActualHarvestDate      *string    `json:"actual_harvest_date,omitempty"`
	TotalWaterUsed         float64    `json:"total_water_used"`
	IrrigationMethod       string     `json:"irrigation_method"`
	TotalNitrogenApplied   float64    `json:"total_nitrogen_applied"`
	TotalPhosphorusApplied float64    `json:"total_phosphorus_applied"`
	TotalPotassiumApplied  float64    `json:"total_potassium_applied"`
	CurrentStage           string     `json:"current_stage"`
	CropStatus             string     `json:"crop_status"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func toCropResponse(c *Crop) CropResponse {
	resp := CropResponse{
		ID:                     c.ID,
		FieldID:                c.FieldID,
		CropName:               c.CropName,
		CropVariety:            c.CropVariety,
		SowingDate:             c.SowingDate.Format(dateLayout),
		TotalWaterUsed:         c.TotalWaterUsed,
		IrrigationMethod:       c.IrrigationMethod,
		TotalNitrogenApplied:   c.TotalNitrogenApplied,
		TotalPhosphorusApplied: c.TotalPhosphorusApplied,
		TotalPotassiumApplied:  c.TotalPotassiumApplied,
		CurrentStage:           c.CurrentStage,
		CropStatus:             c.CropStatus,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
	if c.ExpectedHarvestDate != nil {
		s := c.ExpectedHarvestDate.Format(dateLayout)
		resp.ExpectedHarvestDate = &s
	}
	if c.ActualHarvestDate != nil {
		s := c.ActualHarvestDate.Format(dateLayout)
		resp.ActualHarvestDate = &s
	}
	return resp
}

type CropsResponse struct {
	Crops []CropResponse `json:"crops"`
	Count int            `json:"count"`
}

type IrrigationResponse struct {
	ID               string  `json:"id"`
	CropID           string  `json:"crop_id"`
	IrrigationDate   string  `json:"irrigation_date"`
	AmountMM         float64 `json:"amount_mm"`
	IrrigationMethod string  `json:"irrigation_method"`
	DurationMinutes  *int    `json:"duration_minutes,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	TotalWaterUsed   float64 `json:"total_water_used"`
}

type FertilizerResponse struct {
	ID                     string  `json:"id"`
	CropID                 string  `json:"crop_id"`
	ApplicationDate        string  `json:"application_date"`
	NutrientType           string  `json:"nutrient_type"`
	AmountKgPerHa          float64 `json:"amount_kg_per_ha"`
	ApplicationMethod      *string `json:"application_method,omitempty"`
	FertilizerName         *string `json:"fertilizer_name,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	TotalNitrogenApplied   float64 `json:"total_nitrogen_applied"`
	TotalPhosphorusApplied float64 `json:"total_phosphorus_applied"`
	TotalPotassiumApplied  float64 `json:"total_potassium_applied"`
}

type GrowthStageResponse struct {
	ID           string   `json:"id"`
	CropID       string   `json:"crop_id"`
	StageName    string   `json:"stage_name"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	KcValue      *float64 `json:"kc_value,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func toGrowthStageResponse(g *GrowthStage) GrowthStageResponse {
	resp := GrowthStageResponse{
		ID:           g.ID,
		CropID:       g.CropID,
		StageName:    g.StageName,
		StartDate:    g.StartDate.Format(dateLayout),
		DurationDays: g.DurationDays,
		KcValue:      g.KcValue,
		Notes:        g.Notes,
	}
	if g.EndDate != nil {
		s := g.EndDate.Format(dateLayout)
		resp.EndDate = &s
	}
	return resp
}

type CropDetailResponse struct {
	Crop         CropResponse          `json:"crop"`
	GrowthStages []GrowthStageResponse `json:"growth_stages"`
}
