// AngelaMos | 2026
// dto.go

package field

import (
	"time"
)

type CreateFieldRequest struct {
	FieldName               string       `json:"field_name"                validate:"required,min=1,max=255"`
	Coordinates             []Coordinate `json:"coordinates"               validate:"required,min=1,dive"`
	AreaHectares            float64      `json:"area_hectares"             validate:"required,gt=0"`
	SoilType                *string      `json:"soil_type"                 validate:"omitempty,max=100"`
	Elevation               *float64     `json:"elevation"`
	SlopePercentage         *float64     `json:"slope_percentage"          validate:"omitempty,gte=0,lte=100"`
	DrainageType            *string      `json:"drainage_type"             validate:"omitempty,max=50"`
	SoilNitrogen            *float64     `json:"soil_nitrogen"             validate:"omitempty,gte=0"`
	SoilPhosphorus          *float64     `json:"soil_phosphorus"           validate:"omitempty,gte=0"`
	SoilPotassium           *float64     `json:"soil_potassium"            validate:"omitempty,gte=0"`
	SoilPH                  *float64     `json:"soil_ph"                   validate:"omitempty,gte=0,lte=14"`
	OrganicMatterPercentage *float64     `json:"organic_matter_percentage" validate:"omitempty,gte=0,lte=100"`
	SoilMoisturePercentage  *float64     `json:"soil_moisture_percentage"  validate:"omitempty,gte=0,lte=100"`
	AverageTemperature      *float64     `json:"average_temperature"`
	AnnualRainfall          *float64     `json:"annual_rainfall"           validate:"omitempty,gte=0"`
	AverageHumidity         *float64     `json:"average_humidity"          validate:"omitempty,gte=0,lte=100"`
}

type ListFieldsParams struct {
	Limit int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (p *ListFieldsParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
}

type FieldResponse struct {
	ID                      string       `json:"id"`
	FieldName               string       `json:"field_name"`
	Coordinates             []Coordinate `json:"coordinates"`
	AreaHectares            float64      `json:"area_hectares"`
	SoilType                *string      `json:"soil_type,omitempty"`
	Elevation               *float64     `json:"elevation,omitempty"`
	SlopePercentage         *float64     `json:"slope_percentage,omitempty"`
	DrainageType            *string      `json:"drainage_type,omitempty"`
	SoilNitrogen            *float64     `json:"soil_nitrogen,omitempty"`
	SoilPhosphorus          *float64     `json:"soil_phosphorus,omitempty"`
	SoilPotassium           *float64     `json:"soil_potassium,omitempty"`
	SoilPH                  *float64     `json:"soil_ph,omitempty"`
	OrganicMatterPercentage *float64     `json:"organic_matter_percentage,omitempty"`
	SoilMoisturePercentage  *float64     `json:"soil_moisture_percentage,omitempty"`
	AverageTemperature      *float64     `json:"average_temperature,omitempty"`
	AnnualRainfall          *float64     `json:"annual_rainfall,omitempty"`
	AverageHumidity         *float64     `json:"average_humidity,omitempty"`
	Status                  string       `json:"status"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

func toFieldResponse(f *Field) FieldResponse {
	return FieldResponse{
		ID:                      f.ID,
		FieldName:               f.FieldName,
		Coordinates:             f.Coordinates,
		AreaHectares:            f.AreaHectares,
		SoilType:                f.SoilType,
		Elevation:               f.Elevation,
		SlopePercentage:         f.SlopePercentage,
		DrainageType:            f.DrainageType,
		SoilNitrogen:            f.SoilNitrogen,
		SoilPhosphorus:          f.SoilPhosphorus,
		SoilPotassium:           f.SoilPotassium,
		SoilPH:                  f.SoilPH,
		OrganicMatterPercentage: f.OrganicMatterPercentage,
		SoilMoisturePercentage:  f.SoilMoisturePercentage,
		AverageTemperature:      f.AverageTemperature,
		AnnualRainfall:          f.AnnualRainfall,
		AverageHumidity:         f.AverageHumidity,
		Status:                  f.Status,
		CreatedAt:               f.CreatedAt,
		UpdatedAt:               f.UpdatedAt,
	}
}

type FieldsResponse struct {
	Fields []FieldResponse `json:"fields"`
	Count  int             `json:"count"`
}
