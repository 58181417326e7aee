// AngelaMos | 2026
// dto.go

package event

import (
	"time"

	"github.com/angelamos/gigbook/internal/core"
)

type CreateEventRequest struct {
	Name                string     `json:"name"               validate:"required,min=1,max=200"`
	ContractID          string     `json:"contract_id"        validate:"required,uuid4"`
	OfferorProfileID    string     `json:"profile_offeror_id" validate:"required,uuid4"`
	OffereeProfileID    string     `json:"profile_offeree_id" validate:"required,uuid4"`
	ContactPerson       *string    `json:"contact_person,omitempty" validate:"omitempty,max=100"`
	ContactPhone        *string    `json:"contact_phone,omitempty"  validate:"omitempty,phone"`
	Date                Date       `json:"date"`
	Duration            Duration   `json:"duration"`
	Start               *TimeOfDay `json:"start" validate:"required"`
	End                 *TimeOfDay `json:"end"   validate:"required"`
	Arrive              *time.Time `json:"arrive,omitempty"`
	StageSet            *TimeOfDay `json:"stage_set,omitempty"`
	StageCheck          *TimeOfDay `json:"stage_check,omitempty"`
	CateringOpen        *TimeOfDay `json:"catering_open,omitempty"`
	CateringClose       *TimeOfDay `json:"catering_close,omitempty"`
	MealTime            *TimeOfDay `json:"meal_time,omitempty"`
	MealLocationName    string     `json:"meal_location_name"    validate:"required,min=1,max=200"`
	MealLocationAddress string     `json:"meal_location_address" validate:"required,min=1,max=300"`
	AccommodationID     *string    `json:"accommodation_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateEventRequest struct {
	Name                *string                  `json:"name,omitempty"               validate:"omitempty,min=1,max=200"`
	ContractID          *string                  `json:"contract_id,omitempty"        validate:"omitempty,uuid4"`
	OfferorProfileID    *string                  `json:"profile_offeror_id,omitempty" validate:"omitempty,uuid4"`
	OffereeProfileID    *string                  `json:"profile_offeree_id,omitempty" validate:"omitempty,uuid4"`
	ContactPerson       core.Optional[string]    `json:"contact_person"`
	ContactPhone        core.Optional[string]    `json:"contact_phone"`
	Date                *Date                    `json:"date,omitempty"`
	Duration            *Duration                `json:"duration,omitempty"`
	Start               *TimeOfDay               `json:"start,omitempty"`
	End                 *TimeOfDay               `json:"end,omitempty"`
	Arrive              core.Optional[time.Time] `json:"arrive"`
	StageSet            core.Optional[TimeOfDay] `json:"stage_set"`
	StageCheck          core.Optional[TimeOfDay] `json:"stage_check"`
	CateringOpen        core.Optional[TimeOfDay] `json:"catering_open"`
	CateringClose       core.Optional[TimeOfDay] `json:"catering_close"`
	MealTime            core.Optional[TimeOfDay] `json:"meal_time"`
	MealLocationName    *string                  `json:"meal_location_name,omitempty"    validate:"omitempty,min=1,max=200"`
	MealLocationAddress *string                  `json:"meal_location_address,omitempty" validate:"omitempty,min=1,max=300"`
	AccommodationID     core.Optional[string]    `json:"accommodation_id" validate:"-"`
}

type EventResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	ContractID          string     `json:"contract_id"`
	OfferorProfileID    string     `json:"profile_offeror_id"`
	OffereeProfileID    string     `json:"profile_offeree_id"`
	ContactPerson       *string    `json:"contact_person,omitempty"`
	ContactPhone        *string    `json:"contact_phone,omitempty"`
	Date                Date       `json:"date"`
	Duration            Duration   `json:"duration"`
	Start               TimeOfDay  `json:"start"`
	End                 TimeOfDay  `json:"end"`
	Arrive              *time.Time `json:"arrive,omitempty"`
	StageSet            *TimeOfDay `json:"stage_set,omitempty"`
	StageCheck          *TimeOfDay `json:"stage_check,omitempty"`
	CateringOpen        *TimeOfDay `json:"catering_open,omitempty"`
	CateringClose       *TimeOfDay `json:"catering_close,omitempty"`
	MealTime            *TimeOfDay `json:"meal_time,omitempty"`
	MealLocationName    string     `json:"meal_location_name"`
	MealLocationAddress string     `json:"meal_location_address"`
	AccommodationID     *string    `json:"accommodation_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func ToEventResponse(e *Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		Name:                e.Name,
		ContractID:          e.ContractID,
		OfferorProfileID:    e.OfferorProfileID,
		OffereeProfileID:    e.OffereeProfileID,
		ContactPerson:       e.ContactPerson,
		ContactPhone:        e.ContactPhone,
		Date:                e.Date,
		Duration:            e.Duration,
		Start:               e.Start,
		End:                 e.End,
		Arrive:              e.Arrive,
		StageSet:            e.StageSet,
		StageCheck:          e.StageCheck,
		CateringOpen:        e.CateringOpen,
		CateringClose:       e.CateringClose,
		MealTime:            e.MealTime,
		MealLocationName:    e.MealLocationName,
		MealLocationAddress: e.MealLocationAddress,
		AccommodationID:     e.AccommodationID,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
