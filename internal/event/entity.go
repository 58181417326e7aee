// AngelaMos | 2026
// entity.go

package event

import (
	"time"
)

// Event is a scheduled performance under a contract. It carries references
// to both profiles and optionally to an accommodation; every reference must
// be live at creation and update time.
type Event struct {
	ID                  string     `db:"id"`
	Name                string     `db:"name"`
	ContractID          string     `db:"contract_id"`
	OfferorProfileID    string     `db:"profile_offeror_id"`
	OffereeProfileID    string     `db:"profile_offeree_id"`
	ContactPerson       *string    `db:"contact_person"`
	ContactPhone        *string    `db:"contact_phone"`
	Date                Date       `db:"date"`
	Duration            Duration   `db:"duration"`
	Start               TimeOfDay  `db:"start_time"`
	End                 TimeOfDay  `db:"end_time"`
	Arrive              *time.Time `db:"arrive"`
	StageSet            *TimeOfDay `db:"stage_set"`
	StageCheck          *TimeOfDay `db:"stage_check"`
	CateringOpen        *TimeOfDay `db:"catering_open"`
	CateringClose       *TimeOfDay `db:"catering_close"`
	MealTime            *TimeOfDay `db:"meal_time"`
	MealLocationName    string     `db:"meal_location_name"`
	MealLocationAddress string     `db:"meal_location_address"`
	AccommodationID     *string    `db:"accommodation_id"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}
