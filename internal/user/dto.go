// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/angelamos/gigbook/internal/core"
)

type CreateUserRequest struct {
	Username    string  `json:"username"       validate:"required,min=3,max=50"`
	Password    string  `json:"password"       validate:"required,min=8,max=128"`
	EntityType  string  `json:"type_of_entity" validate:"required,min=1,max=50"`
	Name        string  `json:"name"           validate:"required,min=1,max=100"`
	Surname     string  `json:"surname"        validate:"required,min=1,max=100"`
	Email       string  `json:"email_address"  validate:"required,email,max=255"`
	Phone       string  `json:"phone_number"   validate:"required,phone"`
	VATID       *string `json:"vat_id,omitempty"       validate:"omitempty,max=50"`
	BankAccount *string `json:"bank_account,omitempty" validate:"omitempty,max=50"`
}

// UpdateUserRequest carries a partial update. Pointer fields distinguish
// "absent" from "set"; Optional fields additionally distinguish an explicit
// null, which clears the stored value.
type UpdateUserRequest struct {
	Username    *string                `json:"username,omitempty"       validate:"omitempty,min=3,max=50"`
	EntityType  *string                `json:"type_of_entity,omitempty" validate:"omitempty,min=1,max=50"`
	Name        *string                `json:"name,omitempty"           validate:"omitempty,min=1,max=100"`
	Surname     *string                `json:"surname,omitempty"        validate:"omitempty,min=1,max=100"`
	Email       *string                `json:"email_address,omitempty"  validate:"omitempty,email,max=255"`
	Phone       *string                `json:"phone_number,omitempty"   validate:"omitempty,phone"`
	VATID       core.Optional[string]  `json:"vat_id"`
	BankAccount core.Optional[string]  `json:"bank_account"`
}

type SoftDeleteUserRequest struct {
	DeactivationDate *time.Time `json:"deactivation_date,omitempty"`
}

type UserResponse struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	EntityType       string     `json:"type_of_entity"`
	Name             string     `json:"name"`
	Surname          string     `json:"surname"`
	Email            string     `json:"email_address"`
	Phone            string     `json:"phone_number"`
	VATID            *string    `json:"vat_id,omitempty"`
	BankAccount      *string    `json:"bank_account,omitempty"`
	IsActive         bool       `json:"is_active"`
	DeactivationDate *time.Time `json:"deactivation_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DeactivationResponse confirms a soft delete.
type DeactivationResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	DeactivationDate time.Time `json:"deactivation_date"`
}

// ProfileSummary and ContractSummary are the projections the account views
// expose for resources owned by a user. The owning packages implement the
// directory interfaces below.
type ProfileSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ContractSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListUsersParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Active   string `json:"active"`
}

func (p *ListUsersParams) Normalize() {
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

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		EntityType:       u.EntityType,
		Name:             u.Name,
		Surname:          u.Surname,
		Email:            u.Email,
		Phone:            u.Phone,
		VATID:            u.VATID,
		BankAccount:      u.BankAccount,
		IsActive:         u.IsActive,
		DeactivationDate: u.DeactivationDate,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
