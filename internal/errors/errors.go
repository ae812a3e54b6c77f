package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError is a user-correctable failure. Message is shown to the
// end user verbatim, so it must stay human-readable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrEventNotFound     = &NotFoundError{Entity: "event"}
	ErrPositionNotFound  = &NotFoundError{Entity: "position"}
	ErrSlotNotFound      = &NotFoundError{Entity: "slot"}
	ErrVolunteerNotFound = &NotFoundError{Entity: "volunteer"}
)

// Scheduling validation failures. The messages are part of the UI contract;
// callers display them without translation.
var (
	ErrEndBeforeStart      = &ValidationError{Message: "End time must be after start time"}
	ErrStartBeforePosition = &ValidationError{Message: "Start time must be after position start time"}
	ErrEndAfterPosition    = &ValidationError{Message: "End time must be before position end time"}
	ErrSlotOverlap         = &ValidationError{Message: "This time slot overlaps with an existing slot"}
)

// Check-in validation failures
var (
	ErrInvalidSlot      = &ValidationError{Message: "Invalid slot"}
	ErrNoRegistration   = &ValidationError{Message: "No registration found for this email address"}
	ErrAlreadyCheckedIn = &ValidationError{Message: "You have already checked in for this slot"}
	ErrNoActiveSlot     = &ValidationError{Message: "No active time slot found for check-in"}
	ErrInvalidEmail     = &ValidationError{Message: "Invalid email address"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError. Validation failures
// are user-correctable and carry a displayable message; everything else is
// treated as an operational failure.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError with a displayable message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
