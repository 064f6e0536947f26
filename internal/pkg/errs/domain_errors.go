package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers.
// Handlers map these to HTTP status codes; match with errors.Is.
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidTime  = errors.New("invalid date or time")

	// Booking rule errors
	ErrInvalidService    = errors.New("invalid or inactive service")
	ErrPastBooking       = errors.New("cannot book in the past")
	ErrConflict          = errors.New("time slot conflicts with an existing appointment")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Not found errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrPetNotFound         = errors.New("pet not found")

	// Uniqueness
	ErrServiceNameTaken = errors.New("service name already exists")

	// Idempotency errors
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
