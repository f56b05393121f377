// AngelaMos | 2026
// dashboard.go

package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/middleware"
	"github.com/agrovia/farmconnect/internal/user"
)

type Summary struct {
	TotalFields       int     `json:"total_fields"       db:"total_fields"`
	TotalAreaHectares float64 `json:"total_area_hectares" db:"total_area_hectares"`
	ActiveCrops       int     `json:"active_crops"       db:"active_crops"`
	TotalClaims       int     `json:"total_claims"       db:"total_claims"`
	PendingClaims     int     `json:"pending_claims"     db:"pending_claims"`
	ApprovedClaims    int     `json:"approved_claims"    db:"approved_claims"`
}

type RecentCrop struct {
	ID           string    `json:"id"            db:"id"`
	CropName     string    `json:"crop_name"     db:"crop_name"`
	FieldName    string    `json:"field_name"    db:"field_name"`
	CurrentStage string    `json:"current_stage" db:"current_stage"`
	SowingDate   time.Time `json:"sowing_date"   db:"sowing_date"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

type SummaryResponse struct {
	Summary     Summary      `json:"summary"`
	RecentCrops []RecentCrop `json:"recent_crops"`
}

type Repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) *Repository {
	return &Repository{db: db}
}

// FarmerSummary aggregates everything the farmer landing page shows in
// two queries.
func (r *Repository) FarmerSummary(
	ctx context.Context,
	userID string,
) (*SummaryResponse, error) {
	summaryQuery := `
		SELECT
			(SELECT COUNT(*) FROM fields
			 WHERE user_id = $1 AND status = 'active') AS total_fields,
			(SELECT COALESCE(SUM(area_hectares), 0) FROM fields
			 WHERE user_id = $1 AND status = 'active') AS total_area_hectares,
			(SELECT COUNT(*) FROM crops
			 WHERE user_id = $1 AND crop_status = 'active') AS active_crops,
			(SELECT COUNT(*) FROM climate_damage_claims
			 WHERE user_id = $1) AS total_claims,
			(SELECT COUNT(*) FROM climate_damage_claims
			 WHERE user_id = $1
			   AND claim_status IN ('submitted', 'under_review')) AS pending_claims,
			(SELECT COUNT(*) FROM climate_damage_claims
			 WHERE user_id = $1
			   AND claim_status IN ('approved', 'completed')) AS approved_claims`

	var summary Summary
	if err := r.db.GetContext(ctx, &summary, summaryQuery, userID); err != nil {
		return nil, fmt.Errorf("farmer summary: %w", err)
	}

	recentQuery := `
		SELECT c.id, c.crop_name, f.field_name, c.current_stage,
		       c.sowing_date, c.created_at
		FROM crops c
		JOIN fields f ON f.id = c.field_id
		WHERE c.user_id = $1 AND c.crop_status = 'active'
		ORDER BY c.created_at DESC
		LIMIT 5`

	recent := []RecentCrop{}
	if err := r.db.SelectContext(ctx, &recent, recentQuery, userID); err != nil {
		return nil, fmt.Errorf("recent crops: %w", err)
	}

	return &SummaryResponse{Summary: summary, RecentCrops: recent}, nil
}

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(middleware.RequireUserType(user.RoleFarmer))
		r.Get("/farmer-summary", h.FarmerSummary)
	})
}

func (h *Handler) FarmerSummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	summary, err := h.repo.FarmerSummary(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, summary)
}
