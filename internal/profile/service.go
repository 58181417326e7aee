// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/user"
)

// UserLookup verifies a user exists and is active. The user service
// implements it.
type UserLookup interface {
	LiveUser(ctx context.Context, id string) error
}

type Service struct {
	repo  Repository
	users UserLookup
}

func NewService(repo Repository, users UserLookup) *Service {
	return &Service{repo: repo, users: users}
}

// Create stamps the acting user as owner. The owner must be a live account;
// a profile never references a deactivated user.
func (s *Service) Create(
	ctx context.Context,
	actor authz.Actor,
	req CreateProfileRequest,
) (*Profile, error) {
	if actor.UserID == "" {
		return nil, fmt.Errorf("create profile: %w", core.ErrUnauthorized)
	}

	if err := s.users.LiveUser(ctx, actor.UserID); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	profile := &Profile{
		ID:              uuid.New().String(),
		OwnerID:         actor.UserID,
		Name:            req.Name,
		PerformanceType: req.PerformanceType,
		Description:     req.Description,
		Bio:             req.Bio,
		SocialMedia:     req.SocialMedia,
		StagePlan:       req.StagePlan,
		TechRider:       req.TechRider,
		Photos:          req.Photos,
		Videos:          req.Videos,
		Audios:          req.Audios,
		OnlinePress:     req.OnlinePress,
		Website:         req.Website,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Get has no ownership check: profiles are discoverable by any
// authenticated user.
func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	actor authz.Actor,
	id string,
	req UpdateProfileRequest,
) (*Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := authz.OwnerOnly(actor, profile.OwnerID); !dec.Allowed {
		return nil, fmt.Errorf(
			"update profile: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.PerformanceType != nil {
		profile.PerformanceType = *req.PerformanceType
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.SocialMedia != nil {
		profile.SocialMedia = *req.SocialMedia
	}
	req.StagePlan.Apply(&profile.StagePlan)
	req.TechRider.Apply(&profile.TechRider)
	if req.Photos != nil {
		profile.Photos = *req.Photos
	}
	if req.Videos != nil {
		profile.Videos = *req.Videos
	}
	if req.Audios != nil {
		profile.Audios = *req.Audios
	}
	if req.OnlinePress != nil {
		profile.OnlinePress = *req.OnlinePress
	}
	req.Website.Apply(&profile.Website)

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) Delete(
	ctx context.Context,
	actor authz.Actor,
	id string,
) error {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dec := authz.OwnerOnly(actor, profile.OwnerID); !dec.Allowed {
		return fmt.Errorf(
			"delete profile: %s: %w",
			dec.Reason,
			core.ErrForbidden,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListProfilesParams,
) ([]Profile, int, error) {
	return s.repo.List(ctx, params)
}

// OwnerOf reports a profile's owner. Contract and event checks resolve
// offeree profiles through this.
func (s *Service) OwnerOf(ctx context.Context, id string) (string, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return profile.OwnerID, nil
}

func (s *Service) ProfilesByOwner(
	ctx context.Context,
	ownerID string,
) ([]user.ProfileSummary, error) {
	profiles, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]user.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, user.ProfileSummary{
			ID:   p.ID,
			Name: p.Name,
		})
	}

	return summaries, nil
}

var _ user.ProfileDirectory = (*Service)(nil)
