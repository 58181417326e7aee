// AngelaMos | 2026
// entity.go

package accommodation

import (
	"time"

	"github.com/angelamos/gigbook/internal/event"
)

// Accommodation is a lodging record referenced by events. It is a shared
// resource: any authenticated user may manage any accommodation, so there
// is no owner column.
type Accommodation struct {
	ID            string           `db:"id"`
	Name          string           `db:"name"`
	ContactPerson string           `db:"contact_person"`
	Address       string           `db:"address"`
	Telephone     string           `db:"telephone"`
	Email         *string          `db:"email"`
	Website       *string          `db:"website"`
	URL           *string          `db:"url"`
	CheckIn       *event.TimeOfDay `db:"check_in"`
	CheckOut      *event.TimeOfDay `db:"check_out"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}
