// AngelaMos | 2026
// handler.go

package event

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/middleware"
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
	r.Route("/events", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/{eventID}", h.Get)
		r.Patch("/{eventID}", h.Update)
		r.Delete("/{eventID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	event, err := h.service.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToEventResponse(event))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	event, err := h.service.Get(r.Context(), actorFrom(r), eventID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToEventResponse(event))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	event, err := h.service.Update(r.Context(), actorFrom(r), eventID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToEventResponse(event))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	if err := h.service.Delete(r.Context(), actorFrom(r), eventID); err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, DeleteResponse{Deleted: true})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "event")
	case errors.Is(err, core.ErrForbidden):
		core.JSONError(w, err)
	case errors.Is(err, core.ErrInvalidInput):
		core.JSONError(w, err)
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	default:
		core.InternalServerError(w, err)
	}
}

func actorFrom(r *http.Request) authz.Actor {
	return authz.Actor{
		UserID: middleware.GetUserID(r.Context()),
		Role:   middleware.GetUserRole(r.Context()),
	}
}
