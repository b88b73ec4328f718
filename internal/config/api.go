package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/JaimeStill/ministry-cms/pkg/middleware"
	"github.com/JaimeStill/ministry-cms/pkg/openapi"
	"github.com/JaimeStill/ministry-cms/pkg/pagination"
)

// APIConfig configures the module serving /articles, /documents and /blobs.
type APIConfig struct {
	// BasePath is a single segment such as "/api".
	BasePath string `toml:"base_path"`

	// RequestTimeout bounds each API request's context. "0s" disables it.
	RequestTimeout string `toml:"request_timeout"`

	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
	OpenAPI    openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

func (c *APIConfig) Finalize() error {
	if v := os.Getenv("API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("API_REQUEST_TIMEOUT"); v != "" {
		c.RequestTimeout = v
	}
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "90s"
	}

	if len(c.BasePath) < 2 || c.BasePath[0] != '/' || strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("base_path must be a single path segment such as /api, got %q", c.BasePath)
	}
	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d < 0 {
		return fmt.Errorf("invalid request_timeout %q", c.RequestTimeout)
	}

	sections := []struct {
		name     string
		finalize func() error
	}{
		{"cors", func() error {
			return c.CORS.Finalize(&middleware.CORSEnv{
				Enabled:          "API_CORS_ENABLED",
				Origins:          "API_CORS_ORIGINS",
				AllowedMethods:   "API_CORS_ALLOWED_METHODS",
				AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
				AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
				MaxAge:           "API_CORS_MAX_AGE",
			})
		}},
		{"pagination", func() error {
			return c.Pagination.Finalize(&pagination.ConfigEnv{
				DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
				MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
			})
		}},
		{"openapi", func() error {
			return c.OpenAPI.Finalize(&openapi.ConfigEnv{
				Title:        "API_OPENAPI_TITLE",
				Description:  "API_OPENAPI_DESCRIPTION",
				ContactEmail: "API_OPENAPI_CONTACT_EMAIL",
				Servers:      "API_OPENAPI_SERVERS",
			})
		}},
	}
	for _, s := range sections {
		if err := s.finalize(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}
