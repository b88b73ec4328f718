package bible

import (
	"errors"
	"net/http"
)

// Domain errors for the book catalog.
var (
	ErrInvalidTestament = errors.New("testament key must be all, old or new")
	ErrMissingBook      = errors.New("book name required")
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidChapter   = errors.New("chapter must be a positive integer")
	ErrChapterNotFound  = errors.New("chapter not found")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrChapterNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTestament),
		errors.Is(err, ErrMissingBook),
		errors.Is(err, ErrInvalidChapter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
