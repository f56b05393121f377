// AngelaMos | 2026
// handler.go

package scheme

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrovia/farmconnect/internal/core"
)

type SchemeResponse struct {
	ID                  string    `json:"id"`
	SchemeCode          string    `json:"scheme_code"`
	SchemeName          string    `json:"scheme_name"`
	Description         *string   `json:"description,omitempty"`
	MaxClaimAmount      *float64  `json:"max_claim_amount,omitempty"`
	EligibilityCriteria *string   `json:"eligibility_criteria,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type SchemesResponse struct {
	Schemes []SchemeResponse `json:"schemes"`
	Count   int              `json:"count"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the scheme catalog without authentication.
// Farmers browse schemes before they ever register an account.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/government-schemes", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Get("/{code}", h.GetByCode)
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := SearchParams{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("max_amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			core.JSONError(w, core.InvalidFieldError(
				"max_amount",
				"must be a number",
			))
			return
		}
		params.MaxAmount = &amount
	}

	schemes, err := h.service.Search(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]SchemeResponse, 0, len(schemes))
	for i := range schemes {
		responses = append(responses, toSchemeResponse(&schemes[i]))
	}

	core.OK(w, SchemesResponse{Schemes: responses, Count: len(responses)})
}

func (h *Handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	scheme, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "scheme")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, toSchemeResponse(scheme))
}

func toSchemeResponse(s *Scheme) SchemeResponse {
	return SchemeResponse{
		ID:                  s.ID,
		SchemeCode:          s.SchemeCode,
		SchemeName:          s.SchemeName,
		Description:         s.Description,
		MaxClaimAmount:      s.MaxClaimAmount,
		EligibilityCriteria: s.EligibilityCriteria,
		CreatedAt:           s.CreatedAt,
	}
}
