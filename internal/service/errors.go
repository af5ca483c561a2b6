package service

import "errors"

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the caller is not the owning user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned on a failed login attempt. It never
	// distinguishes an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError aggregates every failing field of an input. Errors on
// nested location fields appear under both the nested key ("location.pincode")
// and the flattened top-level key ("pincode"), so callers can render them
// against flat form fields without knowing the nesting.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
