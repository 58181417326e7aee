// AngelaMos | 2026
// service_test.go

package user

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
	users map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]*User)}
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (f *fakeRepository) GetByUsername(
	_ context.Context,
	username string,
) (*User, error) {
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
}

func (f *fakeRepository) Update(_ context.Context, user *User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	user.UpdatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeRepository) UpdatePassword(
	_ context.Context,
	id, passwordHash string,
) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepository) SoftDelete(
	_ context.Context,
	id string,
	at time.Time,
) error {
	user, ok := f.users[id]
	if !ok || user.DeactivationDate != nil {
		return fmt.Errorf("deactivate user: %w", core.ErrNotFound)
	}
	user.IsActive = false
	user.DeactivationDate = &at
	return nil
}

func (f *fakeRepository) HardDelete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepository) List(
	_ context.Context,
	_ ListUsersParams,
) ([]User, int, error) {
	users := make([]User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, len(users), nil
}

func signupReq(username string) CreateUserRequest {
	return CreateUserRequest{
		Username:   username,
		Password:   "correct-horse-battery",
		EntityType: "individual",
		Name:       "Ada",
		Surname:    "Lovelace",
		Email:      username + "@example.com",
		Phone:      "+30 697 123-4567",
	}
}

func TestSignup(t *testing.T) {
	svc := NewService(newFakeRepository())

	user, err := svc.Signup(context.Background(), signupReq("ada"))
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)

	valid, err := core.VerifyPassword("correct-horse-battery", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Signup(context.Background(), signupReq("ada"))
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupReq("ada"))
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestGetIsSelfOnly(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	ada, err := svc.Signup(ctx, signupReq("ada"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, authz.Actor{UserID: ada.ID}, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, got.ID)

	_, err = svc.Get(ctx, authz.Actor{UserID: "someone-else"}, ada.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)

	// The admin role gets no shortcut on the regular surface; admins use
	// the /admin routes.
	_, err = svc.Get(
		ctx,
		authz.Actor{UserID: "root", Role: authz.RoleAdmin},
		ada.ID,
	)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateMePartialMerge(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	req := signupReq("ada")
	vat := "EL123456789"
	req.VATID = &vat
	ada, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	newName := "Augusta"
	updated, err := svc.UpdateMe(ctx, ada.ID, UpdateUserRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Augusta", updated.Name)
	assert.Equal(t, ada.Surname, updated.Surname, "absent field must survive")
	assert.Equal(t, ada.Email, updated.Email)
	require.NotNil(t, updated.VATID)
	assert.Equal(t, vat, *updated.VATID, "absent optional must survive")
}

func TestUpdateMeExplicitNullClearsField(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	req := signupReq("ada")
	vat := "EL123456789"
	req.VATID = &vat
	ada, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	updated, err := svc.UpdateMe(ctx, ada.ID, UpdateUserRequest{
		VATID: core.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.VATID)
}

func TestDeactivate(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	ada, err := svc.Signup(ctx, signupReq("ada"))
	require.NoError(t, err)

	resp, err := svc.Deactivate(ctx, ada.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, resp.ID)
	assert.Equal(t, "ada", resp.Username)
	assert.WithinDuration(t, time.Now(), resp.DeactivationDate, time.Minute)

	// The row survives a soft delete and stays readable.
	got, err := svc.GetMe(ctx, ada.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	require.NotNil(t, got.DeactivationDate)

	info, err := svc.GetAuthInfo(ctx, ada.ID)
	require.NoError(t, err)
	assert.False(t, info.IsActive, "deactivated accounts must not log in")
}

func TestDeactivateExplicitTimestamp(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	ada, err := svc.Signup(ctx, signupReq("ada"))
	require.NoError(t, err)

	at := time.Date(2026, 10, 27, 16, 0, 0, 0, time.UTC)
	resp, err := svc.Deactivate(ctx, ada.ID, &at)
	require.NoError(t, err)
	assert.True(t, resp.DeactivationDate.Equal(at))
}

func TestLiveUser(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	ada, err := svc.Signup(ctx, signupReq("ada"))
	require.NoError(t, err)

	require.NoError(t, svc.LiveUser(ctx, ada.ID))

	_, err = svc.Deactivate(ctx, ada.ID, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.LiveUser(ctx, ada.ID), core.ErrInvalidInput)
	assert.ErrorIs(t, svc.LiveUser(ctx, "missing"), core.ErrNotFound)
}

func TestHardDelete(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	ada, err := svc.Signup(ctx, signupReq("ada"))
	require.NoError(t, err)

	require.NoError(t, svc.HardDelete(ctx, ada.ID))

	_, err = svc.GetMe(ctx, ada.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
