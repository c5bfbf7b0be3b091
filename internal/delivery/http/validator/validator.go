// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "backstage/internal/domain/errors"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the standard
// VALIDATION_FAILED application error with the field details attached.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
