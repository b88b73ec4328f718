package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// UploadsConfig bounds the multipart uploads accepted by the document endpoints.
type UploadsConfig struct {
	MaxImageSize    string `toml:"max_image_size"`
	MaxDocumentSize string `toml:"max_document_size"`

	maxImageBytes    int64
	maxDocumentBytes int64
}

func (c *UploadsConfig) MaxImageBytes() int64 {
	return c.maxImageBytes
}

func (c *UploadsConfig) MaxDocumentBytes() int64 {
	return c.maxDocumentBytes
}

func (c *UploadsConfig) Finalize() error {
	if c.MaxImageSize == "" {
		c.MaxImageSize = "5MB"
	}
	if c.MaxDocumentSize == "" {
		c.MaxDocumentSize = "25MB"
	}
	if v := os.Getenv("UPLOADS_MAX_IMAGE_SIZE"); v != "" {
		c.MaxImageSize = v
	}
	if v := os.Getenv("UPLOADS_MAX_DOCUMENT_SIZE"); v != "" {
		c.MaxDocumentSize = v
	}

	var err error
	if c.maxImageBytes, err = parseSize(c.MaxImageSize); err != nil {
		return fmt.Errorf("invalid max_image_size: %w", err)
	}
	if c.maxDocumentBytes, err = parseSize(c.MaxDocumentSize); err != nil {
		return fmt.Errorf("invalid max_document_size: %w", err)
	}
	return nil
}

func (c *UploadsConfig) Merge(overlay *UploadsConfig) {
	if overlay.MaxImageSize != "" {
		c.MaxImageSize = overlay.MaxImageSize
	}
	if overlay.MaxDocumentSize != "" {
		c.MaxDocumentSize = overlay.MaxDocumentSize
	}
}

func parseSize(s string) (int64, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("size must be positive")
	}
	return n, nil
}
