// AngelaMos | 2026
// entity.go

package profile

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a jsonb-backed list of strings, used for media link
// collections. Stored as a single column rather than a join table because
// the links are opaque to the system.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = StringList{}
		return nil
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	return nil
}

type Profile struct {
	ID              string     `db:"id"`
	OwnerID         string     `db:"owner_id"`
	Name            string     `db:"name"`
	PerformanceType string     `db:"performance_type"`
	Description     string     `db:"description"`
	Bio             string     `db:"bio"`
	SocialMedia     StringList `db:"social_media"`
	StagePlan       *string    `db:"stage_plan"`
	TechRider       *string    `db:"tech_rider"`
	Photos          StringList `db:"photos"`
	Videos          StringList `db:"videos"`
	Audios          StringList `db:"audios"`
	OnlinePress     StringList `db:"online_press"`
	Website         *string    `db:"website"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
