// AngelaMos | 2026
// handler.go

package prediction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/middleware"
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
	r.Route("/yield-predictions", func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{predictionID}", h.Get)
		r.Put("/{predictionID}/actual", h.RecordActual)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	p, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err, "create_prediction")
		return
	}

	core.Created(w, toPredictionResponse(p), "prediction created")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	params := ListPredictionsParams{
		CropID: r.URL.Query().Get("crop_id"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			core.JSONError(w, core.InvalidFieldError("limit", "must be an integer"))
			return
		}
		params.Limit = limit
	}

	predictions, err := h.service.List(r.Context(), userID, params)
	if err != nil {
		h.writeServiceError(w, err, "get_predictions")
		return
	}

	responses := make([]PredictionResponse, 0, len(predictions))
	for i := range predictions {
		responses = append(responses, toPredictionResponse(&predictions[i]))
	}

	core.OK(w, PredictionsResponse{
		Predictions: responses,
		Count:       len(responses),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	predictionID := chi.URLParam(r, "predictionID")

	p, err := h.service.GetOwned(r.Context(), userID, predictionID)
	if err != nil {
		h.writeServiceError(w, err, "get_prediction")
		return
	}

	core.OK(w, toPredictionResponse(p))
}

func (h *Handler) RecordActual(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	predictionID := chi.URLParam(r, "predictionID")

	var req RecordActualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	p, err := h.service.RecordActual(r.Context(), userID, predictionID, req)
	if err != nil {
		h.writeServiceError(w, err, "record_actual")
		return
	}

	core.OKMessage(w, toPredictionResponse(p), "actual yield recorded")
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "prediction")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "access denied")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	default:
		core.JSONError(w, core.StoreError(op, err))
	}
}
