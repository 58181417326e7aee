// AngelaMos | 2026
// service_test.go

package profile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
)

type fakeRepository struct {
	profiles map[string]*Profile
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: make(map[string]*Profile)}
}

func (f *fakeRepository) Create(_ context.Context, profile *Profile) error {
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	clone := *profile
	f.profiles[profile.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, profile *Profile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return fmt.Errorf("update profile: %w", core.ErrNotFound)
	}
	profile.UpdatedAt = time.Now()
	clone := *profile
	f.profiles[profile.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.profiles[id]; !ok {
		return fmt.Errorf("delete profile: %w", core.ErrNotFound)
	}
	delete(f.profiles, id)
	return nil
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	ownerID string,
) ([]Profile, error) {
	var out []Profile
	for _, p := range f.profiles {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) List(
	_ context.Context,
	_ ListProfilesParams,
) ([]Profile, int, error) {
	var out []Profile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, len(out), nil
}

type fakeUserLookup struct {
	live map[string]bool
}

func (f *fakeUserLookup) LiveUser(_ context.Context, id string) error {
	live, ok := f.live[id]
	if !ok {
		return fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if !live {
		return fmt.Errorf("user %s is deactivated: %w", id, core.ErrInvalidInput)
	}
	return nil
}

func newTestService() *Service {
	return NewService(newFakeRepository(), &fakeUserLookup{
		live: map[string]bool{"alice": true, "bob": true, "ghost": false},
	})
}

func createReq() CreateProfileRequest {
	website := "https://example.com"
	return CreateProfileRequest{
		Name:            "The Night Owls",
		PerformanceType: "band",
		Description:     "Four-piece indie band",
		Bio:             "Formed in 2019",
		SocialMedia:     []string{"https://instagram.com/nightowls"},
		Photos:          []string{"https://cdn.example.com/p1.jpg"},
		Website:         &website,
	}
}

func TestCreateStampsOwner(t *testing.T) {
	svc := newTestService()

	profile, err := svc.Create(
		context.Background(),
		authz.Actor{UserID: "alice"},
		createReq(),
	)
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "alice", profile.OwnerID)
}

func TestCreateRequiresLiveUser(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(
		context.Background(),
		authz.Actor{UserID: "ghost"},
		createReq(),
	)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.Create(context.Background(), authz.Actor{}, createReq())
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestGetIsOpen(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "alice"}, createReq())
	require.NoError(t, err)

	// Any authenticated user can read, even a non-owner.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdateOwnerOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "alice"}, createReq())
	require.NoError(t, err)

	newName := "The Day Owls"
	_, err = svc.Update(ctx, authz.Actor{UserID: "bob"}, created.ID,
		UpdateProfileRequest{Name: &newName})
	assert.ErrorIs(t, err, core.ErrForbidden)

	updated, err := svc.Update(ctx, authz.Actor{UserID: "alice"}, created.ID,
		UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "The Day Owls", updated.Name)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "alice"}, createReq())
	require.NoError(t, err)

	bio := "Formed in 2020"
	updated, err := svc.Update(ctx, authz.Actor{UserID: "alice"}, created.ID,
		UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "Formed in 2020", updated.Bio)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.PerformanceType, updated.PerformanceType)
	require.NotNil(t, updated.Website)
	assert.Equal(t, *created.Website, *updated.Website)
}

func TestUpdateExplicitNullClearsWebsite(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "alice"}, createReq())
	require.NoError(t, err)
	require.NotNil(t, created.Website)

	updated, err := svc.Update(ctx, authz.Actor{UserID: "alice"}, created.ID,
		UpdateProfileRequest{Website: core.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Website)
}

func TestDeleteOwnerOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "alice"}, createReq())
	require.NoError(t, err)

	err = svc.Delete(ctx, authz.Actor{UserID: "bob"}, created.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)

	err = svc.Delete(ctx, authz.Actor{UserID: "alice"}, created.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAdminRoleGetsNoOwnershipBypass(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "alice"}, createReq())
	require.NoError(t, err)

	// Ownership is ownership: the admin role does not unlock other users'
	// profiles on the regular surface.
	newName := "Renamed by admin"
	_, err = svc.Update(
		ctx,
		authz.Actor{UserID: "root", Role: authz.RoleAdmin},
		created.ID,
		UpdateProfileRequest{Name: &newName},
	)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"https://a.example", "https://b.example"}

	value, err := list.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)

	var empty StringList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
