// Package validator adapts go-playground/validator to echo.
package validator

import (
	"satoru/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Validate checks struct tags on i.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
