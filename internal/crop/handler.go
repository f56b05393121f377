// AngelaMos | 2026
// handler.go

package crop

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
	r.Route("/crops", func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{cropID}", h.Get)
		r.Post("/{cropID}/irrigation", h.AddIrrigation)
		r.Post("/{cropID}/fertilizer", h.AddFertilizer)
		r.Post("/{cropID}/growth-stages", h.AddGrowthStage)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreateCropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	crop, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err, "create")
		return
	}

	core.Created(w, toCropResponse(crop), "crop created")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	params := ListCropsParams{
		FieldID: r.URL.Query().Get("field_id"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			core.JSONError(w, core.InvalidFieldError("limit", "must be an integer"))
			return
		}
		params.Limit = limit
	}

	crops, err := h.service.List(r.Context(), userID, params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]CropResponse, 0, len(crops))
	for i := range crops {
		responses = append(responses, toCropResponse(&crops[i]))
	}

	core.OK(w, CropsResponse{Crops: responses, Count: len(responses)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	cropID := chi.URLParam(r, "cropID")

	crop, stages, err := h.service.GetDetail(r.Context(), userID, cropID)
	if err != nil {
		h.writeServiceError(w, err, "get")
		return
	}

	stageResponses := make([]GrowthStageResponse, 0, len(stages))
	for i := range stages {
		stageResponses = append(stageResponses, toGrowthStageResponse(&stages[i]))
	}

	core.OK(w, CropDetailResponse{
		Crop:         toCropResponse(crop),
		GrowthStages: stageResponses,
	})
}

func (h *Handler) AddIrrigation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	cropID := chi.URLParam(r, "cropID")

	var req AddIrrigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	record, newTotal, err := h.service.AddIrrigation(
		r.Context(),
		userID,
		cropID,
		req,
	)
	if err != nil {
		h.writeServiceError(w, err, "create")
		return
	}

	core.Created(w, IrrigationResponse{
		ID:               record.ID,
		CropID:           record.CropID,
		IrrigationDate:   record.IrrigationDate.Format(dateLayout),
		AmountMM:         record.AmountMM,
		IrrigationMethod: record.IrrigationMethod,
		DurationMinutes:  record.DurationMinutes,
		Notes:            record.Notes,
		TotalWaterUsed:   newTotal,
	}, "irrigation recorded")
}

func (h *Handler) AddFertilizer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	cropID := chi.URLParam(r, "cropID")

	var req AddFertilizerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	record, totals, err := h.service.AddFertilizer(
		r.Context(),
		userID,
		cropID,
		req,
	)
	if err != nil {
		h.writeServiceError(w, err, "create")
		return
	}

	core.Created(w, FertilizerResponse{
		ID:                     record.ID,
		CropID:                 record.CropID,
		ApplicationDate:        record.ApplicationDate.Format(dateLayout),
		NutrientType:           record.NutrientType,
		AmountKgPerHa:          record.AmountKgPerHa,
		ApplicationMethod:      record.ApplicationMethod,
		FertilizerName:         record.FertilizerName,
		Notes:                  record.Notes,
		TotalNitrogenApplied:   totals.Nitrogen,
		TotalPhosphorusApplied: totals.Phosphorus,
		TotalPotassiumApplied:  totals.Potassium,
	}, "fertilizer recorded")
}

func (h *Handler) AddGrowthStage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	cropID := chi.URLParam(r, "cropID")

	var req AddGrowthStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	stage, err := h.service.AddGrowthStage(r.Context(), userID, cropID, req)
	if err != nil {
		h.writeServiceError(w, err, "create")
		return
	}

	core.Created(w, toGrowthStageResponse(stage), "growth stage recorded")
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "crop")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "access denied")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	default:
		core.JSONError(w, core.StoreError(op, err))
	}
}
