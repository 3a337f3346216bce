package models

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound indicates no booking matched the lookup. The same
	// error is returned for an unknown PNR and for a PNR whose email/mobile
	// did not match, so callers cannot probe whether a PNR exists.
	ErrBookingNotFound = errors.New("no matching booking found")

	// ErrAlreadyCancelled indicates the booking was cancelled earlier
	ErrAlreadyCancelled = errors.New("this ticket has already been cancelled")

	// ErrDuplicatePNR indicates a PNR collided with an existing booking.
	// Handled internally by regenerating the PNR; never shown to callers.
	ErrDuplicatePNR = errors.New("pnr already exists")
)

// ValidationError reports missing or malformed request input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps an underlying database failure. The wrapped detail is
// for server-side logs only; callers get a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the failed operation name
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
