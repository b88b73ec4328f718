package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	defaultBasePath      = ".data/blobs"
	defaultPublicURL     = "/api/blobs"
	defaultMaxUploadSize = "50MiB"
)

// Config locates the blob directory and the URL clients fetch blobs from.
type Config struct {
	// BasePath is the directory blobs are written under.
	BasePath string `toml:"base_path"`

	// PublicURL prefixes stored keys in returned image URLs.
	PublicURL string `toml:"public_url"`

	// MaxUploadSize caps a single stored blob, in binary units ("50MiB", "512KiB").
	MaxUploadSize string `toml:"max_upload_size"`

	maxUploadBytes int64
}

// Env names the environment variables read by Finalize.
type Env struct {
	BasePath      string
	PublicURL     string
	MaxUploadSize string
}

// MaxUploadSizeBytes is valid after Finalize.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadBytes
}

func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func (c *Config) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = defaultBasePath
	}
	if c.PublicURL == "" {
		c.PublicURL = defaultPublicURL
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = defaultMaxUploadSize
	}
}

func (c *Config) loadEnv(env *Env) {
	for name, field := range map[string]*string{
		env.BasePath:      &c.BasePath,
		env.PublicURL:     &c.PublicURL,
		env.MaxUploadSize: &c.MaxUploadSize,
	} {
		if name == "" {
			continue
		}
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BasePath) == "" {
		return fmt.Errorf("base_path required")
	}

	c.PublicURL = strings.TrimSuffix(c.PublicURL, "/")

	size, err := units.RAMInBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size %q: %w", c.MaxUploadSize, err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadBytes = size
	return nil
}
