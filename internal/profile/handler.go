// AngelaMos | 2026
// handler.go

package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	r.Route("/profiles", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{profileID}", h.Get)
		r.Patch("/{profileID}", h.Update)
		r.Delete("/{profileID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToProfileResponse(profile))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	profile, err := h.service.Get(r.Context(), profileID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToProfileResponse(profile))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.Update(r.Context(), actorFrom(r), profileID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToProfileResponse(profile))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	if err := h.service.Delete(r.Context(), actorFrom(r), profileID); err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, DeleteResponse{Deleted: true})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListProfilesParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
	}

	profiles, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToProfileResponseList(profiles),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "profile")
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

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
