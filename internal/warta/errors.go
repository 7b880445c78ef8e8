package warta

import "errors"

var (
	// ErrUnauthenticated means no valid principal was attached to the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the principal's role is outside the required set.
	ErrForbidden = errors.New("forbidden")
	// ErrSelfDelete means a principal tried to delete its own user record.
	ErrSelfDelete = errors.New("cannot delete own account")
)

// FieldErrors maps a payload field to its human-readable failures, in
// the order they were detected.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// ValidationError reports a rejected payload with per-field details.
type ValidationError struct {
	Message string
	Details FieldErrors
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// NotFoundError reports a missing resource by name.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}
