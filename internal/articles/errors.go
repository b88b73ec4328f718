package articles

import (
	"errors"
	"net/http"
)

// Domain errors for article operations.
var (
	ErrNotFound     = errors.New("article not found")
	ErrDuplicate    = errors.New("article already exists")
	ErrDeleted      = errors.New("cannot publish a deleted article")
	ErrInvalidInput = errors.New("invalid article input")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrDeleted), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
