// AngelaMos | 2026
// service_test.go

package accommodation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/event"
)

type fakeRepository struct {
	accommodations map[string]*Accommodation
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accommodations: make(map[string]*Accommodation)}
}

func (f *fakeRepository) Create(_ context.Context, a *Accommodation) error {
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	clone := *a
	f.accommodations[a.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Accommodation, error) {
	a, ok := f.accommodations[id]
	if !ok {
		return nil, fmt.Errorf("get accommodation: %w", core.ErrNotFound)
	}
	clone := *a
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, a *Accommodation) error {
	if _, ok := f.accommodations[a.ID]; !ok {
		return fmt.Errorf("update accommodation: %w", core.ErrNotFound)
	}
	a.UpdatedAt = time.Now()
	clone := *a
	f.accommodations[a.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.accommodations[id]; !ok {
		return fmt.Errorf("delete accommodation: %w", core.ErrNotFound)
	}
	delete(f.accommodations, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]Accommodation, error) {
	var out []Accommodation
	for _, a := range f.accommodations {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.accommodations[id]
	return ok, nil
}

func createReq() CreateAccommodationRequest {
	return CreateAccommodationRequest{
		Name:          "Hotel Meridian",
		ContactPerson: "Reception desk",
		Address:       "12 Harbour Street",
		Telephone:     "+30 210 1234567",
	}
}

func TestSharedLifecycle(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// No owner column: the operations carry no actor, so anyone who
	// reached the route may update and delete.
	newName := "Hotel Meridian Annex"
	updated, err := svc.Update(ctx, created.ID,
		UpdateAccommodationRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Hotel Meridian Annex", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	email := "front@meridian.example"
	req := createReq()
	req.Email = &email

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	checkIn := event.TimeOfDay{Hour: 14}
	updated, err := svc.Update(ctx, created.ID,
		UpdateAccommodationRequest{CheckIn: core.Some(checkIn)})
	require.NoError(t, err)

	require.NotNil(t, updated.CheckIn)
	assert.Equal(t, checkIn, *updated.CheckIn)
	assert.Equal(t, created.Name, updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, email, *updated.Email)
}

func TestUpdateNullClearsEmail(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	email := "front@meridian.example"
	req := createReq()
	req.Email = &email

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID,
		UpdateAccommodationRequest{Email: core.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
}

func TestExists(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepository())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
