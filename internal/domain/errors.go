package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. Repositories map
// store-level failures (sql.ErrNoRows, pq unique violations) onto these so the
// delivery layer never inspects driver errors directly.
var (
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when the store rejects a write due to a
	// unique-constraint violation, e.g. a duplicate event slug.
	ErrConflict = errors.New("uniqueness conflict")

	ErrRequiredFieldEmpty = errors.New("required field is empty")
	ErrEmptyCollection    = errors.New("must contain at least one non-empty entry")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrInvalidValue       = errors.New("value out of range")
	ErrInvalidEmail       = errors.New("invalid email format")

	// ErrMissingEventReference is returned when a booking carries no event id.
	ErrMissingEventReference = errors.New("event reference is required")

	// ErrEventReferenceDangling is returned when a booking references an event
	// that does not exist at validation time.
	ErrEventReferenceDangling = errors.New("referenced event does not exist")
)

// FieldError attaches a field name to a validation failure. It unwraps to the
// underlying sentinel so callers can match on the kind with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError wraps err with the name of the offending field.
func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

// IsValidation reports whether err is one of the validation kinds that should
// surface as a client error rather than a server failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrRequiredFieldEmpty) ||
		errors.Is(err, ErrEmptyCollection) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrMissingEventReference) ||
		errors.Is(err, ErrEventReferenceDangling)
}
