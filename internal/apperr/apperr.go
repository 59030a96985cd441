// Package apperr defines the error kinds every operation is allowed to
// surface. Handlers translate these to HTTP statuses at the boundary;
// anything not wrapped in one of them is treated as internal.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("already exists")
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("access denied")
	ErrNotFound       = errors.New("not found")
	ErrUploadRejected = errors.New("upload rejected")
	ErrInternal       = errors.New("internal error")
)

// HTTPStatus maps an error kind to the response status. Unknown errors are
// reported as 500 so unexpected persistence or filesystem failures never
// leak details to the caller.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUploadRejected):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
