// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID               string     `db:"id"`
	Username         string     `db:"username"`
	PasswordHash     string     `db:"password_hash"`
	EntityType       string     `db:"entity_type"`
	Name             string     `db:"name"`
	Surname          string     `db:"surname"`
	Email            string     `db:"email"`
	Phone            string     `db:"phone"`
	VATID            *string    `db:"vat_id"`
	BankAccount      *string    `db:"bank_account"`
	Role             string     `db:"role"`
	IsActive         bool       `db:"is_active"`
	DeactivationDate *time.Time `db:"deactivation_date"`
	DeleteAt         *time.Time `db:"delete_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// IsDeactivated reports whether the account has been soft-deleted. The row
// stays readable; only login and ownership of new resources are blocked.
func (u *User) IsDeactivated() bool {
	return u.DeactivationDate != nil || !u.IsActive
}

func (u *User) FullName() string {
	return u.Name + " " + u.Surname
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
