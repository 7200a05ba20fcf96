package booking

import (
	"fmt"

	"coden/models"
)

// Error kinds carried to the HTTP layer for status mapping.
const (
	KindValidation  = "validationError"
	KindCapacity    = "capacityError"
	KindState       = "stateError"
	KindInvalidCode = "invalidCodeError"
	KindNotFound    = "notFoundError"
	KindDependency  = "dependencyError"
)

// ValidationError flags malformed input. Local, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", KindValidation, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CapacityError flags an area with no free units.
type CapacityError struct {
	AreaID string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: no units available in area %s", KindCapacity, e.AreaID)
}

// StateError flags an operation invalid for the booking's current status.
type StateError struct {
	Operation string
	Status    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: cannot %s a booking in status %s", KindState, e.Operation, e.Status)
}

// InvalidCodeError flags a check-in code mismatch.
type InvalidCodeError struct {
	BookingID string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("%s: check-in code does not match booking %s", KindInvalidCode, e.BookingID)
}

// NotFoundError flags a missing booking or area.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %s not found", KindNotFound, e.Entity, e.ID)
}

// DependencyError flags a collaborator call that failed after the retry
// budget was exhausted. Booking carries the last consistent state so the
// caller can decide whether to retry the whole operation.
type DependencyError struct {
	Collaborator string // "network", "payment" or "messaging"
	Cause        error
	Booking      *models.Booking
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %s call failed: %v", KindDependency, e.Collaborator, e.Cause)
}

func (e *DependencyError) Unwrap() error {
	return e.Cause
}
