package errors

import (
	"errors"
)

// ValidationError marks malformed or missing input. The services also use
// it for the "entity missing" condition on their update paths, which the
// handlers then map per endpoint; that mixing is part of the external
// contract and is kept as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrCategoryNotFound = NewValidationError("category not found")
var ErrExpenseNotFound = NewValidationError("expense record not found")
var ErrExpenseOwnerNotFound = NewValidationError("user record not found")
var ErrInvalidDateRange = NewValidationError("invalid date range")
var ErrInvalidUserID = NewValidationError("user ID cannot be null")

// Restrict-policy conflicts are not validation failures, the handlers map
// them to 409.
var ErrCategoryInUse = errors.New("category is referenced by existing expenses")
