// AngelaMos | 2026
// handler.go

package accommodation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/gigbook/internal/core"
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
	r.Route("/accommodations", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{accommodationID}", h.Get)
		r.Patch("/{accommodationID}", h.Update)
		r.Delete("/{accommodationID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	accommodation, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToAccommodationResponse(accommodation))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	accommodationID := chi.URLParam(r, "accommodationID")

	accommodation, err := h.service.Get(r.Context(), accommodationID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToAccommodationResponse(accommodation))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	accommodationID := chi.URLParam(r, "accommodationID")

	var req UpdateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	accommodation, err := h.service.Update(r.Context(), accommodationID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToAccommodationResponse(accommodation))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	accommodationID := chi.URLParam(r, "accommodationID")

	if err := h.service.Delete(r.Context(), accommodationID); err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, DeleteResponse{Deleted: true})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accommodations, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAccommodationResponseList(accommodations))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "accommodation")
	default:
		core.InternalServerError(w, err)
	}
}
