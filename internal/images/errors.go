package images

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

// Domain errors for image operations.
var (
	ErrInvalidKey  = errors.New("invalid image key")
	ErrInvalidType = errors.New("unsupported image type")
	ErrEmpty       = errors.New("image is empty")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, handlers.ErrPayloadTooLarge),
		errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidKey),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrEmpty),
		errors.Is(err, storage.ErrInvalidKey),
		errors.Is(err, handlers.ErrMissingFile),
		errors.Is(err, handlers.ErrInvalidBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
