package entity

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerEmailRequired = errors.New("customer email is required")
	ErrCustomerEmailInvalid  = errors.New("customer email is invalid")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderMustHaveItems    = errors.New("order must have at least one item")
)

// ValidationError envuelve un error de validación de la orden con el campo
// que lo produjo. Es el único modo de fallo de la normalización.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %q: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError crea un ValidationError para un campo
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// IsValidationError indica si err es (o envuelve) un ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
