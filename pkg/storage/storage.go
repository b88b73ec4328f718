// Package storage provides blob storage for uploaded images and documents.
// It defines a System interface for storage operations and a filesystem
// implementation suitable for development and single-node deployments.
package storage

import (
	"context"
	"errors"

	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
)

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrTooLarge indicates the blob exceeds the configured max_upload_size.
	ErrTooLarge = errors.New("storage: blob too large")

	// ErrInvalidKey indicates the key is empty or escapes the storage root.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System defines blob storage operations.
type System interface {
	// Store saves data at key, overwriting any existing blob.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at key or ErrNotFound.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob at key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// Path returns the backing file path for key.
	Path(ctx context.Context, key string) (string, error)

	// URL returns the public URL clients use to fetch key.
	URL(key string) string

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}
