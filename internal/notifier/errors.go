package notifier

import "errors"

var (
	// ErrOrderNotFound is returned when the host platform does not know the order (HTTP 404)
	ErrOrderNotFound = errors.New("order not found on host platform")

	// ErrConflict is returned when the host platform already applied the update (HTTP 409)
	ErrConflict = errors.New("update already applied")

	// ErrInvalidStatus is returned when the host platform rejects the transition (HTTP 422)
	ErrInvalidStatus = errors.New("invalid status transition")

	// ErrServiceUnavailable is returned when the host platform is unavailable (HTTP 5xx, timeout)
	ErrServiceUnavailable = errors.New("host platform unavailable")

	// ErrBadRequest is returned when the request is malformed (HTTP 400)
	ErrBadRequest = errors.New("bad request")
)
