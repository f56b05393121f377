// AngelaMos | 2026
// dto.go

package claim

import (
	"time"
)

type SubmitClaimRequest struct {
	FieldID              *string  `json:"field_id"               validate:"omitempty,uuid4"`
	CropID               *string  `json:"crop_id"                validate:"omitempty,uuid4"`
	FarmerName           string   `json:"farmer_name"            validate:"required,min=1,max=255"`
	FarmerEmail          string   `json:"farmer_email"           validate:"required,email,max=255"`
	FarmerPhone          string   `json:"farmer_phone"           validate:"required,min=5,max=20"`
	FarmLocation         string   `json:"farm_location"          validate:"required"`
	FarmerAddress        string   `json:"farmer_address"         validate:"required"`
	IncidentDate         string   `json:"incident_date"          validate:"required,datetime=2006-01-02"`
	DamageType           string   `json:"damage_type"            validate:"required,max=50"`
	CropType             string   `json:"crop_type"              validate:"required,max=100"`
	AffectedAreaHectares float64  `json:"affected_area_hectares" validate:"required,gt=0"`
	EstimatedLossAmount  float64  `json:"estimated_loss_amount"  validate:"required,gt=0"`
	SeverityLevel        string   `json:"severity_level"         validate:"required,oneof=mild moderate severe complete"`
	DamageDescription    string   `json:"damage_description"     validate:"required"`
	WeatherCondition     *string  `json:"weather_condition"      validate:"omitempty,max=100"`
	DamageDuration       *string  `json:"damage_duration"        validate:"omitempty,max=50"`
	SelectedSchemeID     *string  `json:"selected_scheme_id"     validate:"omitempty,max=50"`
	SchemeName           *string  `json:"scheme_name"            validate:"omitempty,max=255"`
	ClaimAmount          *float64 `json:"claim_amount"           validate:"omitempty,gt=0"`
}

type ReviewClaimRequest struct {
	Status          string   `json:"status"           validate:"required,oneof=under_review approved rejected completed"`
	GovernmentNotes *string  `json:"government_notes"`
	ApprovedAmount  *float64 `json:"approved_amount"  validate:"omitempty,gte=0"`
}

type ListClaimsParams struct {
	Status string
	Limit  int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (p *ListClaimsParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
}

type ClaimResponse struct {
	ID                   string     `json:"id"`
	FieldID              *string    `json:"field_id,omitempty"`
	CropID               *string    `json:"crop_id,omitempty"`
	FarmerName           string     `json:"farmer_name"`
	FarmerEmail          string     `json:"farmer_email"`
	FarmerPhone          string     `json:"farmer_phone"`
	FarmLocation         string     `json:"farm_location"`
	FarmerAddress        string     `json:"farmer_address"`
	IncidentDate         string     `json:"incident_date"`
	DamageType           string     `json:"damage_type"`
	CropType             string     `json:"crop_type"`
	AffectedAreaHectares float64    `json:"affected_area_hectares"`
	EstimatedLossAmount  float64    `json:"estimated_loss_amount"`
	SeverityLevel        string     `json:"severity_level"`
	DamageDescription    string     `json:"damage_description"`
	WeatherCondition     *string    `json:"weather_condition,omitempty"`
	DamageDuration       *string    `json:"damage_duration,omitempty"`
	SelectedSchemeID     *string    `json:"selected_scheme_id,omitempty"`
	SchemeName           *string    `json:"scheme_name,omitempty"`
	ClaimAmount          *float64   `json:"claim_amount,omitempty"`
	ClaimStatus          string     `json:"claim_status"`
	ReferenceNumber      string     `json:"claim_reference_number"`
	GovernmentNotes      *string    `json:"government_notes,omitempty"`
	ApprovedAmount       *float64   `json:"approved_amount,omitempty"`
	ApprovalDate         *string    `json:"approval_date,omitempty"`
	PaymentDate          *string    `json:"payment_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func toClaimResponse(c *Claim) ClaimResponse {
	resp := ClaimResponse{
		ID:                   c.ID,
		FieldID:              c.FieldID,
		CropID:               c.CropID,
		FarmerName:           c.FarmerName,
		FarmerEmail:          c.FarmerEmail,
		FarmerPhone:          c.FarmerPhone,
		FarmLocation:         c.FarmLocation,
		FarmerAddress:        c.FarmerAddress,
		IncidentDate:         c.IncidentDate.Format(dateLayout),
		DamageType:           c.DamageType,
		CropType:             c.CropType,
		AffectedAreaHectares: c.AffectedAreaHectares,
		EstimatedLossAmount:  c.EstimatedLossAmount,
		SeverityLevel:        c.SeverityLevel,
		DamageDescription:    c.DamageDescription,
		WeatherCondition:     c.WeatherCondition,
		DamageDuration:       c.DamageDuration,
		SelectedSchemeID:     c.SelectedSchemeID,
		SchemeName:           c.SchemeName,
		ClaimAmount:          c.ClaimAmount,
		ClaimStatus:          c.ClaimStatus,
		ReferenceNumber:      c.ReferenceNumber,
		GovernmentNotes:      c.GovernmentNotes,
		ApprovedAmount:       c.ApprovedAmount,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
	if c.ApprovalDate != nil {
		s := c.ApprovalDate.Format(dateLayout)
		resp.ApprovalDate = &s
	}
	if c.PaymentDate != nil {
		s := c.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &s
	}
	return resp
}

type ClaimsResponse struct {
	Claims []ClaimResponse `json:"claims"`
	Count  int             `json:"count"`
}
