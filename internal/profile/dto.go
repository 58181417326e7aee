// AngelaMos | 2026
// dto.go

package profile

import (
	"time"

	"github.com/angelamos/gigbook/internal/core"
)

type CreateProfileRequest struct {
	Name            string   `json:"name"             validate:"required,min=1,max=100"`
	PerformanceType string   `json:"performance_type" validate:"required,min=1,max=100"`
	Description     string   `json:"description"      validate:"required"`
	Bio             string   `json:"bio"              validate:"required"`
	SocialMedia     []string `json:"social_media"     validate:"omitempty,dive,url"`
	StagePlan       *string  `json:"stage_plan,omitempty" validate:"omitempty,url"`
	TechRider       *string  `json:"tech_rider,omitempty" validate:"omitempty,url"`
	Photos          []string `json:"photos"           validate:"omitempty,dive,url"`
	Videos          []string `json:"videos"           validate:"omitempty,dive,url"`
	Audios          []string `json:"audios"           validate:"omitempty,dive,url"`
	OnlinePress     []string `json:"online_press"     validate:"omitempty,dive,url"`
	Website         *string  `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateProfileRequest is a partial update. A present list replaces the
// stored list wholesale; link-level editing is out of scope.
type UpdateProfileRequest struct {
	Name            *string               `json:"name,omitempty"             validate:"omitempty,min=1,max=100"`
	PerformanceType *string               `json:"performance_type,omitempty" validate:"omitempty,min=1,max=100"`
	Description     *string               `json:"description,omitempty"`
	Bio             *string               `json:"bio,omitempty"`
	SocialMedia     *[]string             `json:"social_media,omitempty" validate:"omitempty,dive,url"`
	StagePlan       core.Optional[string] `json:"stage_plan"`
	TechRider       core.Optional[string] `json:"tech_rider"`
	Photos          *[]string             `json:"photos,omitempty"       validate:"omitempty,dive,url"`
	Videos          *[]string             `json:"videos,omitempty"       validate:"omitempty,dive,url"`
	Audios          *[]string             `json:"audios,omitempty"       validate:"omitempty,dive,url"`
	OnlinePress     *[]string             `json:"online_press,omitempty" validate:"omitempty,dive,url"`
	Website         core.Optional[string] `json:"website"`
}

type ProfileResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	PerformanceType string    `json:"performance_type"`
	Description     string    `json:"description"`
	Bio             string    `json:"bio"`
	SocialMedia     []string  `json:"social_media"`
	StagePlan       *string   `json:"stage_plan,omitempty"`
	TechRider       *string   `json:"tech_rider,omitempty"`
	Photos          []string  `json:"photos"`
	Videos          []string  `json:"videos"`
	Audios          []string  `json:"audios"`
	OnlinePress     []string  `json:"online_press"`
	Website         *string   `json:"website,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ListProfilesParams struct {
	Page     int
	PageSize int
	Search   string
}

func (p *ListProfilesParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListProfilesParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Name:            p.Name,
		PerformanceType: p.PerformanceType,
		Description:     p.Description,
		Bio:             p.Bio,
		SocialMedia:     p.SocialMedia,
		StagePlan:       p.StagePlan,
		TechRider:       p.TechRider,
		Photos:          p.Photos,
		Videos:          p.Videos,
		Audios:          p.Audios,
		OnlinePress:     p.OnlinePress,
		Website:         p.Website,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToProfileResponseList(profiles []Profile) []ProfileResponse {
	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, ToProfileResponse(&profiles[i]))
	}
	return responses
}
