// AngelaMos | 2026
// handler.go

package field

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
	r.Route("/fields", func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{fieldID}", h.Get)
		r.Delete("/{fieldID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(err))
		return
	}

	field, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err, "create_field")
		return
	}

	core.Created(w, toFieldResponse(field), "field created")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var params ListFieldsParams
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			core.JSONError(w, core.InvalidFieldError("limit", "must be an integer"))
			return
		}
		params.Limit = limit
	}

	fields, err := h.service.List(r.Context(), userID, params)
	if err != nil {
		h.writeServiceError(w, err, "get_fields")
		return
	}

	responses := make([]FieldResponse, 0, len(fields))
	for i := range fields {
		responses = append(responses, toFieldResponse(&fields[i]))
	}

	core.OK(w, FieldsResponse{Fields: responses, Count: len(responses)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	fieldID := chi.URLParam(r, "fieldID")

	field, err := h.service.GetOwned(r.Context(), userID, fieldID)
	if err != nil {
		h.writeServiceError(w, err, "get_field")
		return
	}

	core.OK(w, toFieldResponse(field))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	fieldID := chi.URLParam(r, "fieldID")

	if err := h.service.Delete(r.Context(), userID, fieldID); err != nil {
		h.writeServiceError(w, err, "delete_field")
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "field")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "access denied")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	default:
		core.JSONError(w, core.StoreError(op, err))
	}
}
