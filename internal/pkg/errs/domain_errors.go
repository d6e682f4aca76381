package errs

import "errors"

// Sentinels shared by the usecase layer and the HTTP error mapping
var (
	// Screening errors
	ErrScreeningNotFound = errors.New("screening not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidAudience     = errors.New("invalid audience count")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
