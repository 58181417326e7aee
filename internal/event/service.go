// AngelaMos | 2026
// service.go

package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/contract"
	"github.com/angelamos/gigbook/internal/core"
)

// ContractLookup resolves the contract an event hangs off: who issued it,
// who owns the offeree profile, and whether it is still active. The
// contract service implements it.
type ContractLookup interface {
	ContractInfo(
		ctx context.Context,
		contractID string,
	) (offerorID, offereeOwnerID string, disabled bool, err error)
}

// ProfileLookup verifies profile references. The profile service implements
// it.
type ProfileLookup interface {
	OwnerOf(ctx context.Context, profileID string) (string, error)
}

// AccommodationLookup verifies accommodation references. The accommodation
// service implements it.
type AccommodationLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo           Repository
	contracts      ContractLookup
	profiles       ProfileLookup
	accommodations AccommodationLookup
}

func NewService(
	repo Repository,
	contracts ContractLookup,
	profiles ProfileLookup,
	accommodations AccommodationLookup,
) *Service {
	return &Service{
		repo:           repo,
		contracts:      contracts,
		profiles:       profiles,
		accommodations: accommodations,
	}
}

// Create schedules an event under a contract. Only the contract's issuer may
// create, the contract must still be active, every profile and accommodation
// reference must resolve, the date must be today or later, and the duration
// must be strictly positive.
func (s *Service) Create(
	ctx context.Context,
	actor authz.Actor,
	req CreateEventRequest,
) (*Event, error) {
	if actor.UserID == "" {
		return nil, fmt.Errorf("create event: %w", core.ErrUnauthorized)
	}

	// Fail fast on input before touching the store.
	if req.Start == nil || req.End == nil {
		return nil, fmt.Errorf(
			"create event: start and end are required: %w",
			core.ErrInvalidInput,
		)
	}
	if err := validateSchedule(req.Date, req.Duration); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	offerorID, _, disabled, err := s.contracts.ContractInfo(ctx, req.ContractID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf(
				"create event: contract %s: %w",
				req.ContractID,
				core.ErrInvalidInput,
			)
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	if dec := authz.ContractOwner(actor, offerorID); !dec.Allowed {
		return nil, fmt.Errorf(
			"create event: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	if disabled {
		return nil, fmt.Errorf(
			"create event: contract %s is disabled: %w",
			req.ContractID,
			core.ErrInvalidInput,
		)
	}

	if err := s.checkProfile(ctx, req.OfferorProfileID); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	if err := s.checkProfile(ctx, req.OffereeProfileID); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	if err := s.checkAccommodation(ctx, req.AccommodationID); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	event := &Event{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		ContractID:          req.ContractID,
		OfferorProfileID:    req.OfferorProfileID,
		OffereeProfileID:    req.OffereeProfileID,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
		Date:                req.Date,
		Duration:            req.Duration,
		Start:               *req.Start,
		End:                 *req.End,
		Arrive:              req.Arrive,
		StageSet:            req.StageSet,
		StageCheck:          req.StageCheck,
		CateringOpen:        req.CateringOpen,
		CateringClose:       req.CateringClose,
		MealTime:            req.MealTime,
		MealLocationName:    req.MealLocationName,
		MealLocationAddress: req.MealLocationAddress,
		AccommodationID:     req.AccommodationID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Get allows both contract parties to read an event.
func (s *Service) Get(
	ctx context.Context,
	actor authz.Actor,
	id string,
) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offerorID, offereeOwnerID, _, err := s.contracts.ContractInfo(
		ctx,
		event.ContractID,
	)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if dec := authz.ContractParty(actor, offerorID, offereeOwnerID); !dec.Allowed {
		return nil, fmt.Errorf(
			"get event: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	return event, nil
}

// Update merges the payload into the stored event. Only the contract issuer
// may update. Moving the event to another contract re-runs the full contract
// check: the new contract must exist, be active, and be issued by the actor.
func (s *Service) Update(
	ctx context.Context,
	actor authz.Actor,
	id string,
	req UpdateEventRequest,
) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offerorID, _, disabled, err := s.contracts.ContractInfo(
		ctx,
		event.ContractID,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if dec := authz.ContractOwner(actor, offerorID); !dec.Allowed {
		return nil, fmt.Errorf(
			"update event: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	if disabled {
		return nil, fmt.Errorf(
			"update event: contract %s is disabled: %w",
			event.ContractID,
			core.ErrInvalidInput,
		)
	}

	if req.ContractID != nil && *req.ContractID != event.ContractID {
		newOfferorID, _, newDisabled, err := s.contracts.ContractInfo(
			ctx,
			*req.ContractID,
		)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return nil, fmt.Errorf(
					"update event: contract %s: %w",
					*req.ContractID,
					core.ErrInvalidInput,
				)
			}
			return nil, fmt.Errorf("update event: %w", err)
		}
		if dec := authz.ContractOwner(actor, newOfferorID); !dec.Allowed {
			return nil, fmt.Errorf(
				"update event: %s: %w",
				dec.Reason,
				core.ErrForbidden,
			)
		}
		if newDisabled {
			return nil, fmt.Errorf(
				"update event: contract %s is disabled: %w",
				*req.ContractID,
				core.ErrInvalidInput,
			)
		}
		event.ContractID = *req.ContractID
	}

	if req.OfferorProfileID != nil {
		if err := s.checkProfile(ctx, *req.OfferorProfileID); err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
		event.OfferorProfileID = *req.OfferorProfileID
	}
	if req.OffereeProfileID != nil {
		if err := s.checkProfile(ctx, *req.OffereeProfileID); err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
		event.OffereeProfileID = *req.OffereeProfileID
	}
	if req.AccommodationID.Present() && req.AccommodationID.Get() != nil {
		if err := s.checkAccommodation(ctx, req.AccommodationID.Get()); err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
	}
	req.AccommodationID.Apply(&event.AccommodationID)

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Duration != nil {
		event.Duration = *req.Duration
	}
	if req.Start != nil {
		event.Start = *req.Start
	}
	if req.End != nil {
		event.End = *req.End
	}
	if req.MealLocationName != nil {
		event.MealLocationName = *req.MealLocationName
	}
	if req.MealLocationAddress != nil {
		event.MealLocationAddress = *req.MealLocationAddress
	}
	req.ContactPerson.Apply(&event.ContactPerson)
	req.ContactPhone.Apply(&event.ContactPhone)
	req.Arrive.Apply(&event.Arrive)
	req.StageSet.Apply(&event.StageSet)
	req.StageCheck.Apply(&event.StageCheck)
	req.CateringOpen.Apply(&event.CateringOpen)
	req.CateringClose.Apply(&event.CateringClose)
	req.MealTime.Apply(&event.MealTime)

	if req.Date != nil || req.Duration != nil {
		if err := validateSchedule(event.Date, event.Duration); err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes the event outright. Only the contract issuer may delete.
func (s *Service) Delete(
	ctx context.Context,
	actor authz.Actor,
	id string,
) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	offerorID, _, _, err := s.contracts.ContractInfo(ctx, event.ContractID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if dec := authz.ContractOwner(actor, offerorID); !dec.Allowed {
		return fmt.Errorf(
			"delete event: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	return s.repo.Delete(ctx, id)
}

// RefsByContract lists the event identifiers scheduled under a contract.
// The contract surface exposes it to both parties.
func (s *Service) RefsByContract(
	ctx context.Context,
	contractID string,
) ([]string, error) {
	return s.repo.IDsByContract(ctx, contractID)
}

func (s *Service) checkProfile(ctx context.Context, profileID string) error {
	if _, err := s.profiles.OwnerOf(ctx, profileID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf(
				"profile %s: %w",
				profileID,
				core.ErrInvalidInput,
			)
		}
		return err
	}
	return nil
}

func (s *Service) checkAccommodation(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}

	exists, err := s.accommodations.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("accommodation %s: %w", *id, core.ErrInvalidInput)
	}
	return nil
}

var _ contract.EventRefs = (*Service)(nil)

// validateSchedule rejects past dates and non-positive durations.
func validateSchedule(date Date, duration Duration) error {
	if date.BeforeDay(Today()) {
		return fmt.Errorf(
			"date %s is in the past: %w",
			date,
			core.ErrInvalidInput,
		)
	}

	if duration.Duration <= 0 {
		return fmt.Errorf(
			"duration must be positive: %w",
			core.ErrInvalidInput,
		)
	}

	return nil
}
