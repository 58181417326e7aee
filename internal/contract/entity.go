// AngelaMos | 2026
// entity.go

package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a booking agreement issued by a user (the offeror) to a
// performer profile (the offeree). Disabling is its soft-delete state and
// is terminal: no API path re-enables a contract.
type Contract struct {
	ID                    string           `db:"id"`
	Name                  string           `db:"name"`
	OfferorID             string           `db:"offeror_id"`
	OffereeID             string           `db:"offeree_id"`
	TotalFee              decimal.Decimal  `db:"total_fee"`
	CurrencyCode          string           `db:"currency_code"`
	UponSigning           int              `db:"upon_signing"`
	UponCompletion        int              `db:"upon_completion"`
	PaymentMethod         string           `db:"payment_method"`
	TravelExpenses        *decimal.Decimal `db:"travel_expenses"`
	AccommodationExpenses *decimal.Decimal `db:"accommodation_expenses"`
	OtherExpenses         *decimal.Decimal `db:"other_expenses"`
	Disabled              bool             `db:"disabled"`
	DisabledAt            *time.Time       `db:"disabled_at"`
	SignedAt              *time.Time       `db:"signed_at"`
	DeleteAt              *time.Time       `db:"delete_at"`
	CreatedAt             time.Time        `db:"created_at"`
	UpdatedAt             time.Time        `db:"updated_at"`
}

func (c *Contract) IsDisabled() bool {
	return c.Disabled
}
