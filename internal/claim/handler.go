// AngelaMos | 2026
// handler.go

package claim

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/middleware"
	"github.com/agrovia/farmconnect/internal/user"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/climate-damage-claims", func(r chi.Router) {
		r.Get("/track/{reference}", h.Track)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireUserType(user.RoleFarmer))
			r.Post("/", h.Submit)
			r.Get("/", h.List)
			r.Get("/{claimID}", h.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireUserType(user.RoleGovernment))
			r.Get("/review", h.ListAll)
			r.Put("/{claimID}/review", h.Review)
		})
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req SubmitClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	claim, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err, "submit_claim")
		return
	}

	core.Created(w, toClaimResponse(claim), "claim submitted")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	params, ok := h.parseListParams(w, r)
	if !ok {
		return
	}

	claims, err := h.service.ListForOwner(r.Context(), userID, params)
	if err != nil {
		h.writeServiceError(w, err, "get_claims")
		return
	}

	core.OK(w, toClaimsResponse(claims))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	claimID := chi.URLParam(r, "claimID")

	claim, err := h.service.GetOwned(r.Context(), userID, claimID)
	if err != nil {
		h.writeServiceError(w, err, "get_claim")
		return
	}

	core.OK(w, toClaimResponse(claim))
}

func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		core.BadRequest(w, "claim reference required")
		return
	}

	claim, err := h.service.TrackByReference(r.Context(), reference)
	if err != nil {
		h.writeServiceError(w, err, "track_claim")
		return
	}

	core.OK(w, toClaimResponse(claim))
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseListParams(w, r)
	if !ok {
		return
	}

	claims, err := h.service.ListAll(r.Context(), params)
	if err != nil {
		h.writeServiceError(w, err, "get_claims")
		return
	}

	core.OK(w, toClaimsResponse(claims))
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	claimID := chi.URLParam(r, "claimID")

	var req ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	claim, err := h.service.Review(r.Context(), claimID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			core.JSONError(w, core.NewAppError(
				core.ErrInvalidInput,
				err.Error(),
				http.StatusConflict,
				"INVALID_STATUS_TRANSITION",
			))
			return
		}
		h.writeServiceError(w, err, "review_claim")
		return
	}

	core.OKMessage(w, toClaimResponse(claim), "claim updated")
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "claim")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "access denied")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	default:
		core.JSONError(w, core.StoreError(op, err))
	}
}

func (h *Handler) parseListParams(
	w http.ResponseWriter,
	r *http.Request,
) (ListClaimsParams, bool) {
	params := ListClaimsParams{
		Status: r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			core.JSONError(w, core.InvalidFieldError("limit", "must be an integer"))
			return params, false
		}
		params.Limit = limit
	}
	return params, true
}

func toClaimsResponse(claims []Claim) ClaimsResponse {
	responses := make([]ClaimResponse, 0, len(claims))
	for i := range claims {
		responses = append(responses, toClaimResponse(&claims[i]))
	}
	return ClaimsResponse{Claims: responses, Count: len(responses)}
}
