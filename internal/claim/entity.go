// AngelaMos | 2026
// entity.go

package claim

import (
	"time"
)

type Claim struct {
	ID                   string     `db:"id"`
	UserID               string     `db:"user_id"`
	FieldID              *string    `db:"field_id"`
	CropID               *string    `db:"crop_id"`
	FarmerName           string     `db:"farmer_name"`
	FarmerEmail          string     `db:"farmer_email"`
	FarmerPhone          string     `db:"farmer_phone"`
	FarmLocation         string     `db:"farm_location"`
	FarmerAddress        string     `db:"farmer_address"`
	IncidentDate         time.Time  `db:"incident_date"`
	DamageType           string     `db:"damage_type"`
	CropType             string     `db:"crop_type"`
	AffectedAreaHectares float64    `db:"affected_area_hectares"`
	EstimatedLossAmount  float64    `db:"estimated_loss_amount"`
	SeverityLevel        string     `db:"severity_level"`
	DamageDescription    string     `db:"damage_description"`
	WeatherCondition     *string    `db:"weather_condition"`
	DamageDuration       *string    `db:"damage_duration"`
	SelectedSchemeID     *string    `db:"selected_scheme_id"`
	SchemeName           *string    `db:"scheme_name"`
	ClaimAmount          *float64   `db:"claim_amount"`
	ClaimStatus          string     `db:"claim_status"`
	ReferenceNumber      string     `db:"claim_reference_number"`
	GovernmentNotes      *string    `db:"government_notes"`
	ApprovedAmount       *float64   `db:"approved_amount"`
	ApprovalDate         *time.Time `db:"approval_date"`
	PaymentDate          *time.Time `db:"payment_date"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusCompleted   = "completed"
)

// validTransitions is the review state machine. A claim only moves
// forward; rejected and completed are terminal.
var validTransitions = map[string][]string{
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusCompleted},
}

func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
