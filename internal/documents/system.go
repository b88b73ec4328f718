package documents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/ministry-cms/internal/images"
	"github.com/JaimeStill/ministry-cms/pkg/convert"
)

// System converts Word documents, storing their images through the images system.
type System interface {
	Convert(ctx context.Context, document []byte, keyPrefix string) (*convert.Result, error)
}

type documents struct {
	converter *convert.Converter
	images    images.System
	logger    *slog.Logger
}

// New creates a documents system.
func New(converter *convert.Converter, img images.System, logger *slog.Logger) System {
	return &documents{
		converter: converter,
		images:    img,
		logger:    logger.With("system", "documents"),
	}
}

func (s *documents) Convert(ctx context.Context, document []byte, keyPrefix string) (*convert.Result, error) {
	if !ValidPrefix(keyPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, keyPrefix)
	}

	result, err := s.converter.Convert(ctx, document, keyPrefix, s.images.Sink())
	if err != nil {
		return nil, err
	}

	for _, m := range result.Messages {
		s.logger.Warn("conversion message", "key_prefix", keyPrefix, "type", m.Type, "message", m.Message)
	}
	return result, nil
}
