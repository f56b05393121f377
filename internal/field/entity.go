// AngelaMos | 2026
// entity.go

package field

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Coordinates marshals as a JSONB array so the boundary polygon is
// stored verbatim and round-trips without a geometry extension.
type Coordinates []Coordinate

func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Coordinates) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	default:
		return fmt.Errorf("scan coordinates: unsupported type %T", src)
	}
}

type Field struct {
	ID                      string      `db:"id"`
	UserID                  string      `db:"user_id"`
	FieldName               string      `db:"field_name"`
	Coordinates             Coordinates `db:"coordinates"`
	AreaHectares            float64     `db:"area_hectares"`
	SoilType                *string     `db:"soil_type"`
	Elevation               *float64    `db:"elevation"`
	SlopePercentage         *float64    `db:"slope_percentage"`
	DrainageType            *string     `db:"drainage_type"`
	SoilNitrogen            *float64    `db:"soil_nitrogen"`
	SoilPhosphorus          *float64    `db:"soil_phosphorus"`
	SoilPotassium           *float64    `db:"soil_potassium"`
	SoilPH                  *float64    `db:"soil_ph"`
	OrganicMatterPercentage *float64    `db:"organic_matter_percentage"`
	SoilMoisturePercentage  *float64    `db:"soil_moisture_percentage"`
	AverageTemperature      *float64    `db:"average_temperature"`
	AnnualRainfall          *float64    `db:"annual_rainfall"`
	AverageHumidity         *float64    `db:"average_humidity"`
	Status                  string      `db:"status"`
	CreatedAt               time.Time   `db:"created_at"`
	UpdatedAt               time.Time   `db:"updated_at"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDeleted  = "deleted"
)
