package adapter

import "errors"

var (
	// ErrBadRequest maps HTTP 400: invalid data, unknown user on salt
	// lookup, wrong old login key on password change.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized maps HTTP 401 after the silent refresh, if any,
	// has been exhausted.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict maps HTTP 409, e.g. registering an existing email.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError maps HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
