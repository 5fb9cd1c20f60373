package api

import "fmt"

// Error taxonomy for backend calls. Every non-2xx response is converted to
// exactly one of these; callers switch on the type to decide what to show.

// AuthRequiredError means the token is missing or no longer valid.
type AuthRequiredError struct{}

func (e AuthRequiredError) Error() string {
	return "authentication required"
}

// ForbiddenError is returned for admin endpoints hit without the role.
type ForbiddenError struct {
	Path string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("access denied for %s", e.Path)
}

// ValidationError carries the field specific message from a 422 response.
type ValidationError struct {
	Detail string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Detail)
}

// ConflictError covers 400 responses such as a duplicate email on register.
type ConflictError struct {
	Detail string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Detail)
}

type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

// NetworkError is the catch all for transport failures, timeouts and any
// status the taxonomy does not name.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}
