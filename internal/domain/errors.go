package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for speaker registration.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrNoSessionsProvided   = errors.New("can't register speaker with no sessions to present")
	ErrNotEligible          = errors.New("speaker doesn't meet requirements")
	ErrNoSessionsApproved   = errors.New("no sessions approved")
	ErrStorageFailure       = errors.New("storage failure")

	ErrNotFound = errors.New("not found")
)

// Required speaker fields, in validation order.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
)

// MissingFieldError names the first required field found empty.
// errors.Is(err, ErrMissingRequiredField) matches it.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// StorageError reports a failed save. It matches ErrStorageFailure and keeps the
// repository error reachable through errors.Is / errors.As for diagnostics.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause == nil {
		return ErrStorageFailure.Error()
	}
	return fmt.Sprintf("%s: %v", ErrStorageFailure.Error(), e.Cause)
}

func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorageFailure}
	}
	return []error{ErrStorageFailure, e.Cause}
}
