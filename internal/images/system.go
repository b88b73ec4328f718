package images

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/ministry-cms/pkg/convert"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

// System stores images in blob storage.
type System interface {
	// Upload stores data under a unique key derived from key and returns the
	// stored key with its public URL.
	Upload(ctx context.Context, data []byte, key, contentType string) (*Upload, error)

	// Sink adapts Upload to the converter's image sink.
	Sink() convert.ImageSink
}

type images struct {
	storage storage.System
	logger  *slog.Logger
}

// New creates an images system backed by store.
func New(store storage.System, logger *slog.Logger) System {
	return &images{
		storage: store,
		logger:  logger.With("system", "images"),
	}
}

func (s *images) Upload(ctx context.Context, data []byte, key, contentType string) (*Upload, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalidKey)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if !ValidContentType(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, contentType)
	}

	final := storageKey(key, uuid.NewString())
	if err := s.storage.Store(ctx, final, data); err != nil {
		return nil, fmt.Errorf("store image %s: %w", final, err)
	}

	s.logger.Info("image stored", "key", final, "content_type", contentType, "bytes", len(data))
	return &Upload{
		FileKey: final,
		FileURL: s.storage.URL(final),
	}, nil
}

func (s *images) Sink() convert.ImageSink {
	return func(ctx context.Context, data []byte, key, contentType string) (string, error) {
		up, err := s.Upload(ctx, data, key, contentType)
		if err != nil {
			return "", err
		}
		return up.FileURL, nil
	}
}
