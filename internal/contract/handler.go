// AngelaMos | 2026
// handler.go

package contract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/middleware"
)

// EventRefs lists the event identifiers scheduled under a contract. The
// event service implements it; the interface lives here because the
// contract surface exposes the listing.
type EventRefs interface {
	RefsByContract(ctx context.Context, contractID string) ([]string, error)
}

type Handler struct {
	service   *Service
	events    EventRefs
	validator *validator.Validate
}

func NewHandler(service *Service, events EventRefs) *Handler {
	return &Handler{
		service:   service,
		events:    events,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/contracts", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/{contractID}", h.Get)
		r.Patch("/{contractID}", h.Update)
		r.Patch("/{contractID}/disable", h.Disable)
		r.Get("/{contractID}/events", h.ListEvents)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	contract, err := h.service.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToContractResponse(contract))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")

	contract, err := h.service.Get(r.Context(), actorFrom(r), contractID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToContractResponse(contract))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")

	var req UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	contract, err := h.service.Update(
		r.Context(),
		actorFrom(r),
		contractID,
		req,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToContractResponse(contract))
}

func (h *Handler) Disable(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")

	var req DisableContractRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}
	}

	resp, err := h.service.Disable(
		r.Context(),
		actorFrom(r),
		contractID,
		req.DisabledAt,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, resp)
}

// ListEvents returns only identifiers, scoped to the same party check as
// contract reads.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")

	if err := h.service.AuthorizeParty(r.Context(), actorFrom(r), contractID); err != nil {
		h.writeError(w, err)
		return
	}

	eventIDs, err := h.events.RefsByContract(r.Context(), contractID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, EventListResponse{EventIDs: eventIDs})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	// A write against a disabled contract is a terminal-state violation,
	// reported like any other invalid input. 409 stays reserved for
	// uniqueness collisions.
	case errors.Is(err, ErrContractDisabled):
		core.JSONError(w, core.NewAppError(
			err,
			"contract is disabled and cannot be modified",
			http.StatusUnprocessableEntity,
			"VALIDATION_ERROR",
		))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "contract")
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
