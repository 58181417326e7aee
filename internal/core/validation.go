// AngelaMos | 2026
// validation.go

package core

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Telephone numbers: optional leading +, a first digit, then digits, spaces
// or dashes.
var phonePattern = regexp.MustCompile(`^\+?\d[\d\s\-]+$`)

// NewValidator returns the validator used by every handler, with the custom
// "phone" rule registered alongside the built-in tags (iso4217, email, url).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	//nolint:errcheck // registration only fails for an empty tag name
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidPhone reports whether s matches the telephone format accepted at the
// API boundary. Exposed for service-level checks on optional fields.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
