// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/gigbook/internal/auth"
	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup creates an account. This is the one unauthenticated write path.
func (s *Service) Signup(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		EntityType:   req.EntityType,
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		VATID:        req.VATID,
		BankAccount:  req.BankAccount,
		Role:         RoleUser,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

// Get reads a user record on behalf of an actor. Accounts are private:
// only the account holder may read one.
func (s *Service) Get(
	ctx context.Context,
	actor authz.Actor,
	id string,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := authz.SelfOnly(actor, user.ID); !dec.Allowed {
		return nil, fmt.Errorf("get user: %s: %w", dec.Reason, core.ErrForbidden)
	}

	return user, nil
}

// UpdateMe merges the fields present in the payload into the stored record.
// Absent fields stay untouched; explicit nulls clear nullable fields.
func (s *Service) UpdateMe(
	ctx context.Context,
	userID string,
	req UpdateUserRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update me: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.EntityType != nil {
		user.EntityType = *req.EntityType
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	req.VATID.Apply(&user.VATID)
	req.BankAccount.Apply(&user.BankAccount)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Deactivate soft-deletes the account: the row survives, login stops
// working, and the effective timestamp defaults to now.
func (s *Service) Deactivate(
	ctx context.Context,
	userID string,
	at *time.Time,
) (*DeactivationResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("deactivate: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	effective := time.Now()
	if at != nil {
		effective = *at
	}

	if err := s.repo.SoftDelete(ctx, userID, effective); err != nil {
		return nil, err
	}

	return &DeactivationResponse{
		ID:               user.ID,
		Username:         user.Username,
		DeactivationDate: effective,
	}, nil
}

// HardDelete removes the row entirely. It takes no actor: this is the
// administrative path, guarded by routing rather than an ownership rule.
func (s *Service) HardDelete(ctx context.Context, id string) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

// LiveUser verifies that id refers to an existing, active account. Resource
// creation paths call this before stamping ownership.
func (s *Service) LiveUser(ctx context.Context, id string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.IsDeactivated() {
		return fmt.Errorf(
			"user %s is deactivated: %w",
			id,
			core.ErrInvalidInput,
		)
	}

	return nil
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetAuthInfo(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.FullName(),
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive && u.DeactivationDate == nil,
	}
}

var _ auth.UserProvider = (*Service)(nil)
