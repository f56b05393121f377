// AngelaMos | 2026
// entity.go

package scheme

import (
	"time"
)

type Scheme struct {
	ID                  string    `db:"id"`
	SchemeCode          string    `db:"scheme_code"`
	SchemeName          string    `db:"scheme_name"`
	Description         *string   `db:"description"`
	MaxClaimAmount      *float64  `db:"max_claim_amount"`
	EligibilityCriteria *string   `db:"eligibility_criteria"`
	IsActive            bool      `db:"is_active"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}
