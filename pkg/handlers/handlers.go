// Package handlers holds the JSON response and request helpers shared by
// every domain handler.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidBody is returned by DecodeJSON for malformed or oversized bodies.
var ErrInvalidBody = errors.New("invalid request body")

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes {"error": "..."}. Server errors are logged at error
// level, client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
	}
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// DecodeJSON reads a single JSON value from the request body into T.
// Unknown fields and trailing data are rejected.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var v T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("%w: unexpected trailing data", ErrInvalidBody)
	}
	return v, nil
}

// PathUUID parses the named path wildcard as a UUID.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}
