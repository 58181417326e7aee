// AngelaMos | 2026
// dto.go

package accommodation

import (
	"time"

	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/event"
)

type CreateAccommodationRequest struct {
	Name          string           `json:"name"           validate:"required,min=1,max=200"`
	ContactPerson string           `json:"contact_person" validate:"required,min=1,max=100"`
	Address       string           `json:"address"        validate:"required,min=1,max=300"`
	Telephone     string           `json:"telephone"      validate:"required,phone"`
	Email         *string          `json:"email,omitempty"   validate:"omitempty,email"`
	Website       *string          `json:"website,omitempty" validate:"omitempty,url"`
	URL           *string          `json:"url,omitempty"     validate:"omitempty,url"`
	CheckIn       *event.TimeOfDay `json:"check_in,omitempty"`
	CheckOut      *event.TimeOfDay `json:"check_out,omitempty"`
}

type UpdateAccommodationRequest struct {
	Name          *string                        `json:"name,omitempty"           validate:"omitempty,min=1,max=200"`
	ContactPerson *string                        `json:"contact_person,omitempty" validate:"omitempty,min=1,max=100"`
	Address       *string                        `json:"address,omitempty"        validate:"omitempty,min=1,max=300"`
	Telephone     *string                        `json:"telephone,omitempty"      validate:"omitempty,phone"`
	Email         core.Optional[string]          `json:"email"`
	Website       core.Optional[string]          `json:"website"`
	URL           core.Optional[string]          `json:"url"`
	CheckIn       core.Optional[event.TimeOfDay] `json:"check_in"`
	CheckOut      core.Optional[event.TimeOfDay] `json:"check_out"`
}

type AccommodationResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ContactPerson string           `json:"contact_person"`
	Address       string           `json:"address"`
	Telephone     string           `json:"telephone"`
	Email         *string          `json:"email,omitempty"`
	Website       *string          `json:"website,omitempty"`
	URL           *string          `json:"url,omitempty"`
	CheckIn       *event.TimeOfDay `json:"check_in,omitempty"`
	CheckOut      *event.TimeOfDay `json:"check_out,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func ToAccommodationResponse(a *Accommodation) AccommodationResponse {
	return AccommodationResponse{
		ID:            a.ID,
		Name:          a.Name,
		ContactPerson: a.ContactPerson,
		Address:       a.Address,
		Telephone:     a.Telephone,
		Email:         a.Email,
		Website:       a.Website,
		URL:           a.URL,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func ToAccommodationResponseList(list []Accommodation) []AccommodationResponse {
	out := make([]AccommodationResponse, 0, len(list))
	for i := range list {
		out = append(out, ToAccommodationResponse(&list[i]))
	}
	return out
}
