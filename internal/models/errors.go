package models

import (
	"errors"
	"fmt"
)

var (
	ErrStorageFailure   = errors.New("an error occurred in the storage layer during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. These never leave any state changed.
var (
	ErrInvalidAmount    = errors.New("monetary amounts must be numbers between 0 and 9999999999999.99")
	ErrInvalidQuantity  = errors.New("quantity and months must be at least 1")
	ErrCodeEmpty        = errors.New("the code or name must not be empty")
	ErrCodeTooLong      = errors.New("the location code must not be longer than 16 characters")
	ErrInvalidCategory  = errors.New("the item category is not valid")
	ErrInvalidCostType  = errors.New("the cost type must be either 'one-time' or 'recurring'")
	ErrCurrencyMismatch = errors.New("all amounts must use the configured currency")
	ErrBackdatedLine    = errors.New("budget lines must not start before the current month")
	ErrInvalidContent   = errors.New("each bundle content entry must reference exactly one kit or one item")
	ErrUnknownField     = errors.New("the field does not exist or can not be updated")
)

// Constraint errors.
var (
	ErrDuplicateCode        = errors.New("the code or name is already in use")
	ErrDuplicateAssociation = errors.New("the association already exists")
	ErrReferenceInUse       = errors.New("the resource is still referenced and can not be deleted")
	ErrUnknownReference     = errors.New("a referenced resource does not exist or is deleted")
)

// Errors that abort a cascade.
var (
	ErrRecomputeOverflow  = errors.New("an aggregate exceeds the representable range")
	ErrInvariantViolation = errors.New("a composite total does not match its definition after recompute")
)

// DuplicateError is returned when a live association for the same
// parent and child already exists. ExistingID is the ID of that
// row so that callers can offer it for editing.
type DuplicateError struct {
	Kind       string
	ExistingID uint
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %s %d", ErrDuplicateAssociation, e.Kind, e.ExistingID)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateAssociation
}
