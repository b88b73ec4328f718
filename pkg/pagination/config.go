// Package pagination turns page/limit query parameters into bounded page
// requests and shapes paged results.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Config bounds page sizes. A request without a limit gets DefaultPageSize;
// larger limits are clamped to MaxPageSize.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	if env != nil {
		overrideInt(&c.DefaultPageSize, env.DefaultPageSize)
		overrideInt(&c.MaxPageSize, env.MaxPageSize)
	}
	if c.DefaultPageSize == 0 {
		c.DefaultPageSize = 12
	}
	if c.MaxPageSize == 0 {
		c.MaxPageSize = 60
	}

	switch {
	case c.DefaultPageSize < 0 || c.MaxPageSize < 0:
		return fmt.Errorf("page sizes must be positive: default %d, max %d", c.DefaultPageSize, c.MaxPageSize)
	case c.DefaultPageSize > c.MaxPageSize:
		return fmt.Errorf("default_page_size %d exceeds max_page_size %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

// overrideInt ignores unset and unparseable variables.
func overrideInt(dst *int, name string) {
	if name == "" {
		return
	}
	if n, err := strconv.Atoi(os.Getenv(name)); err == nil {
		*dst = n
	}
}
