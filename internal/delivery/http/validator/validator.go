// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "fitznet/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for request DTOs.
type Validator struct {
	validate *validator.Validate
}

// New builds the Echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the domain validation error,
// so the error handler renders a stable 400 instead of raw validator output.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
