// AngelaMos | 2026
// service.go

package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/user"
)

// ErrContractDisabled marks an update attempt against a disabled contract.
// Disabling is terminal; there is no path back to active.
var ErrContractDisabled = errors.New("contract is disabled")

// ProfileLookup resolves offeree profiles. The profile service implements
// it.
type ProfileLookup interface {
	OwnerOf(ctx context.Context, profileID string) (string, error)
}

type Service struct {
	repo     Repository
	profiles ProfileLookup
}

func NewService(repo Repository, profiles ProfileLookup) *Service {
	return &Service{repo: repo, profiles: profiles}
}

// Create issues a contract from the acting user to an offeree profile. The
// profile must exist; a contract never points at a dangling offeree.
func (s *Service) Create(
	ctx context.Context,
	actor authz.Actor,
	req CreateContractRequest,
) (*Contract, error) {
	if actor.UserID == "" {
		return nil, fmt.Errorf("create contract: %w", core.ErrUnauthorized)
	}

	if _, err := s.profiles.OwnerOf(ctx, req.OffereeID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf(
				"create contract: offeree profile %s: %w",
				req.OffereeID,
				core.ErrInvalidInput,
			)
		}
		return nil, fmt.Errorf("create contract: %w", err)
	}

	contract := &Contract{
		ID:                    uuid.New().String(),
		Name:                  req.Name,
		OfferorID:             actor.UserID,
		OffereeID:             req.OffereeID,
		TotalFee:              req.TotalFee,
		CurrencyCode:          req.CurrencyCode,
		UponSigning:           req.UponSigning,
		UponCompletion:        req.UponCompletion,
		PaymentMethod:         req.PaymentMethod,
		TravelExpenses:        req.TravelExpenses,
		AccommodationExpenses: req.AccommodationExpenses,
		OtherExpenses:         req.OtherExpenses,
		SignedAt:              req.SignedAt,
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

// Get allows both parties: the offeror and the owner of the offeree
// profile.
func (s *Service) Get(
	ctx context.Context,
	actor authz.Actor,
	id string,
) (*Contract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParty(ctx, actor, contract, "get contract"); err != nil {
		return nil, err
	}

	return contract, nil
}

// Update merges the payload into the stored contract. Only the offeror may
// update, and a disabled contract rejects all updates.
func (s *Service) Update(
	ctx context.Context,
	actor authz.Actor,
	id string,
	req UpdateContractRequest,
) (*Contract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := authz.ContractOwner(actor, contract.OfferorID); !dec.Allowed {
		return nil, fmt.Errorf(
			"update contract: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	if contract.IsDisabled() {
		return nil, fmt.Errorf("update contract: %w", ErrContractDisabled)
	}

	if req.OffereeID != nil {
		if _, err := s.profiles.OwnerOf(ctx, *req.OffereeID); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return nil, fmt.Errorf(
					"update contract: offeree profile %s: %w",
					*req.OffereeID,
					core.ErrInvalidInput,
				)
			}
			return nil, fmt.Errorf("update contract: %w", err)
		}
		contract.OffereeID = *req.OffereeID
	}

	if req.Name != nil {
		contract.Name = *req.Name
	}
	if req.TotalFee != nil {
		contract.TotalFee = *req.TotalFee
	}
	if req.CurrencyCode != nil {
		contract.CurrencyCode = *req.CurrencyCode
	}
	if req.UponSigning != nil {
		contract.UponSigning = *req.UponSigning
	}
	if req.UponCompletion != nil {
		contract.UponCompletion = *req.UponCompletion
	}
	if req.PaymentMethod != nil {
		contract.PaymentMethod = *req.PaymentMethod
	}
	req.TravelExpenses.Apply(&contract.TravelExpenses)
	req.AccommodationExpenses.Apply(&contract.AccommodationExpenses)
	req.OtherExpenses.Apply(&contract.OtherExpenses)

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

// Disable is the contract's soft delete: the row survives with disabled set
// and a timestamp, and no further update can touch it.
func (s *Service) Disable(
	ctx context.Context,
	actor authz.Actor,
	id string,
	at *time.Time,
) (*DisableResponse, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := authz.ContractOwner(actor, contract.OfferorID); !dec.Allowed {
		return nil, fmt.Errorf(
			"disable contract: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	if contract.IsDisabled() {
		return nil, fmt.Errorf("disable contract: %w", ErrContractDisabled)
	}

	effective := time.Now()
	if at != nil {
		effective = *at
	}

	if err := s.repo.Disable(ctx, id, effective); err != nil {
		return nil, err
	}

	return &DisableResponse{
		ID:         contract.ID,
		Name:       contract.Name,
		DisabledAt: effective,
	}, nil
}

// AuthorizeParty checks that the actor may read resources under a contract.
// The event surface uses this transitively.
func (s *Service) AuthorizeParty(
	ctx context.Context,
	actor authz.Actor,
	contractID string,
) error {
	contract, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return err
	}

	return s.checkParty(ctx, actor, contract, "contract access")
}

// ContractInfo exposes the reference data the event lifecycle needs:
// issuing user, offeree profile owner, and whether the contract is still
// active.
func (s *Service) ContractInfo(
	ctx context.Context,
	contractID string,
) (offerorID, offereeOwnerID string, disabled bool, err error) {
	contract, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return "", "", false, err
	}

	offereeOwner, err := s.profiles.OwnerOf(ctx, contract.OffereeID)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return "", "", false, err
	}

	return contract.OfferorID, offereeOwner, contract.Disabled, nil
}

func (s *Service) ContractsByOfferor(
	ctx context.Context,
	offerorID string,
) ([]user.ContractSummary, error) {
	contracts, err := s.repo.ListByOfferor(ctx, offerorID)
	if err != nil {
		return nil, err
	}

	summaries := make([]user.ContractSummary, 0, len(contracts))
	for _, c := range contracts {
		summaries = append(summaries, user.ContractSummary{
			ID:   c.ID,
			Name: c.Name,
		})
	}

	return summaries, nil
}

func (s *Service) checkParty(
	ctx context.Context,
	actor authz.Actor,
	contract *Contract,
	op string,
) error {
	offereeOwner, err := s.profiles.OwnerOf(ctx, contract.OffereeID)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if dec := authz.ContractParty(actor, contract.OfferorID, offereeOwner); !dec.Allowed {
		return fmt.Errorf("%s: %s: %w", op, dec.Reason, core.ErrForbidden)
	}

	return nil
}

var _ user.ContractDirectory = (*Service)(nil)
