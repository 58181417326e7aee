// AngelaMos | 2026
// dto.go

package contract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelamos/gigbook/internal/core"
)

type CreateContractRequest struct {
	Name                  string           `json:"name"            validate:"required,min=1,max=200"`
	OffereeID             string           `json:"offeree_id"      validate:"required,uuid4"`
	TotalFee              decimal.Decimal  `json:"total_fee"       validate:"required"`
	CurrencyCode          string           `json:"currency_code"   validate:"required,iso4217,ne=XXX"`
	// The two percentages are range-checked individually but are not
	// required to sum to 100.
	UponSigning           int              `json:"upon_signing"    validate:"gte=0,lte=100"`
	UponCompletion        int              `json:"upon_completion" validate:"gte=0,lte=100"`
	PaymentMethod         string           `json:"payment_method"  validate:"required,min=1,max=100"`
	TravelExpenses        *decimal.Decimal `json:"travel_expenses,omitempty"`
	AccommodationExpenses *decimal.Decimal `json:"accommodation_expenses,omitempty"`
	OtherExpenses         *decimal.Decimal `json:"other_expenses,omitempty"`
	SignedAt              *time.Time       `json:"signed_at,omitempty"`
}

// UpdateContractRequest is a partial update. The disabled flag and its
// timestamp are not updatable here; disabling goes through its own
// operation and cannot be reversed.
type UpdateContractRequest struct {
	Name                  *string                        `json:"name,omitempty"            validate:"omitempty,min=1,max=200"`
	OffereeID             *string                        `json:"offeree_id,omitempty"      validate:"omitempty,uuid4"`
	TotalFee              *decimal.Decimal               `json:"total_fee,omitempty"`
	CurrencyCode          *string                        `json:"currency_code,omitempty"   validate:"omitempty,iso4217,ne=XXX"`
	UponSigning           *int                           `json:"upon_signing,omitempty"    validate:"omitempty,gte=0,lte=100"`
	UponCompletion        *int                           `json:"upon_completion,omitempty" validate:"omitempty,gte=0,lte=100"`
	PaymentMethod         *string                        `json:"payment_method,omitempty"  validate:"omitempty,min=1,max=100"`
	TravelExpenses        core.Optional[decimal.Decimal] `json:"travel_expenses"`
	AccommodationExpenses core.Optional[decimal.Decimal] `json:"accommodation_expenses"`
	OtherExpenses         core.Optional[decimal.Decimal] `json:"other_expenses"`
}

type DisableContractRequest struct {
	DisabledAt *time.Time `json:"disabled_at,omitempty"`
}

// DisableResponse confirms a disable, the contract's soft delete.
type DisableResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DisabledAt time.Time `json:"disabled_at"`
}

type ContractResponse struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	OfferorID             string           `json:"offeror_id"`
	OffereeID             string           `json:"offeree_id"`
	TotalFee              decimal.Decimal  `json:"total_fee"`
	CurrencyCode          string           `json:"currency_code"`
	UponSigning           int              `json:"upon_signing"`
	UponCompletion        int              `json:"upon_completion"`
	PaymentMethod         string           `json:"payment_method"`
	TravelExpenses        *decimal.Decimal `json:"travel_expenses,omitempty"`
	AccommodationExpenses *decimal.Decimal `json:"accommodation_expenses,omitempty"`
	OtherExpenses         *decimal.Decimal `json:"other_expenses,omitempty"`
	Disabled              bool             `json:"disabled"`
	DisabledAt            *time.Time       `json:"disabled_at,omitempty"`
	SignedAt              *time.Time       `json:"signed_at,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type EventListResponse struct {
	EventIDs []string `json:"event_ids"`
}

func ToContractResponse(c *Contract) ContractResponse {
	return ContractResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		OfferorID:             c.OfferorID,
		OffereeID:             c.OffereeID,
		TotalFee:              c.TotalFee,
		CurrencyCode:          c.CurrencyCode,
		UponSigning:           c.UponSigning,
		UponCompletion:        c.UponCompletion,
		PaymentMethod:         c.PaymentMethod,
		TravelExpenses:        c.TravelExpenses,
		AccommodationExpenses: c.AccommodationExpenses,
		OtherExpenses:         c.OtherExpenses,
		Disabled:              c.Disabled,
		DisabledAt:            c.DisabledAt,
		SignedAt:              c.SignedAt,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}
