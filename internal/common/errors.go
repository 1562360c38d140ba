package common

import "errors"

var (
	// ErrNotFound is returned by local repositories for missing keys.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation error")

	// ErrNotLoggedIn is returned when an operation needs a live session.
	ErrNotLoggedIn = errors.New("not logged in")
)

// ValidationError carries the user-facing message of a rejected form.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a *ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}
