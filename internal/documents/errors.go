package documents

import (
	"context"
	"errors"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/convert"
	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

// Domain errors for document conversion.
var (
	ErrInvalidKey  = errors.New("invalid document key")
	ErrInvalidType = errors.New("unsupported document type")
)

// MapHTTPStatus maps domain and conversion errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, handlers.ErrPayloadTooLarge),
		errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, convert.ErrDecode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidKey),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, handlers.ErrMissingFile),
		errors.Is(err, handlers.ErrInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
