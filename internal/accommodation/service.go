// AngelaMos | 2026
// service.go

package accommodation

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelamos/gigbook/internal/event"
)

// Service manages the shared accommodation pool. Accommodations carry no
// owner, so the operations take no actor: any authenticated user may
// create, update, or delete any record, which lets several managers
// maintain one venue list together.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateAccommodationRequest,
) (*Accommodation, error) {
	accommodation := &Accommodation{
		ID:            uuid.New().String(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Telephone:     req.Telephone,
		Email:         req.Email,
		Website:       req.Website,
		URL:           req.URL,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
	}

	if err := s.repo.Create(ctx, accommodation); err != nil {
		return nil, err
	}

	return accommodation, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Accommodation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateAccommodationRequest,
) (*Accommodation, error) {
	accommodation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		accommodation.Name = *req.Name
	}
	if req.ContactPerson != nil {
		accommodation.ContactPerson = *req.ContactPerson
	}
	if req.Address != nil {
		accommodation.Address = *req.Address
	}
	if req.Telephone != nil {
		accommodation.Telephone = *req.Telephone
	}
	req.Email.Apply(&accommodation.Email)
	req.Website.Apply(&accommodation.Website)
	req.URL.Apply(&accommodation.URL)
	req.CheckIn.Apply(&accommodation.CheckIn)
	req.CheckOut.Apply(&accommodation.CheckOut)

	if err := s.repo.Update(ctx, accommodation); err != nil {
		return nil, err
	}

	return accommodation, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Accommodation, error) {
	return s.repo.List(ctx)
}

// Exists reports whether the accommodation is live. The event lifecycle
// uses it to validate references.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

var _ event.AccommodationLookup = (*Service)(nil)
