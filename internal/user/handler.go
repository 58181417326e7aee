// AngelaMos | 2026
// handler.go

package user

import (
	"context"
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

// ProfileDirectory and ContractDirectory list resources owned by a user.
// The profile and contract packages implement them; defining them here
// keeps this package free of imports on either.
type ProfileDirectory interface {
	ProfilesByOwner(
		ctx context.Context,
		ownerID string,
	) ([]ProfileSummary, error)
}

type ContractDirectory interface {
	ContractsByOfferor(
		ctx context.Context,
		offerorID string,
	) ([]ContractSummary, error)
}

type Handler struct {
	service   *Service
	profiles  ProfileDirectory
	contracts ContractDirectory
	validator *validator.Validate
}

func NewHandler(
	service *Service,
	profiles ProfileDirectory,
	contracts ContractDirectory,
) *Handler {
	return &Handler{
		service:   service,
		profiles:  profiles,
		contracts: contracts,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/me", h.GetMe)
		r.Patch("/me", h.UpdateMe)
		r.Patch("/me/deactivation", h.DeactivateMe)

		r.Get("/{userID}", h.GetUser)
		r.Get("/{userID}/profiles", h.GetUserProfiles)
		r.Get("/{userID}/contracts", h.GetUserContracts)
	})
}

// Signup is registered separately: it is the only unauthenticated write.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("username"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToUserResponse(user))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	user, err := h.service.UpdateMe(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("username"))
			return
		}
		h.writeError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) DeactivateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SoftDeleteUserRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}
	}

	resp, err := h.service.Deactivate(
		r.Context(),
		userID,
		req.DeactivationDate,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")

	user, err := h.service.Get(r.Context(), actorFrom(r), targetID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) GetUserProfiles(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")

	if dec := authz.SelfOnly(actorFrom(r), targetID); !dec.Allowed {
		core.Forbidden(w, dec.Reason)
		return
	}

	profiles, err := h.profiles.ProfilesByOwner(r.Context(), targetID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, map[string]any{"profiles": profiles})
}

func (h *Handler) GetUserContracts(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")

	if dec := authz.SelfOnly(actorFrom(r), targetID); !dec.Allowed {
		core.Forbidden(w, dec.Reason)
		return
	}

	contracts, err := h.contracts.ContractsByOfferor(r.Context(), targetID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, map[string]any{"contracts": contracts})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/users", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListUsers)
		r.Delete("/{userID}", h.HardDeleteUser)
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := ListUsersParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
		Active:   r.URL.Query().Get("active"),
	}

	users, total, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToUserResponseList(users),
		params.Page,
		params.PageSize,
		total,
	)
}

// HardDeleteUser removes the row permanently. Unlike deactivation this is
// irreversible and reserved for the admin surface.
func (h *Handler) HardDeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")

	if err := h.service.HardDelete(r.Context(), targetID); err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "user")
	case errors.Is(err, core.ErrForbidden):
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
