package middleware

import (
	"os"
	"strconv"
	"strings"
)

// CORSConfig contains Cross-Origin Resource Sharing configuration.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// CORSEnv maps environment variable names for CORS configuration.
// List values are comma-separated.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials string
	MaxAge           string
}

// Finalize applies defaults and environment overrides.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge applies overlay values. Booleans always take the overlay value.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	if overlay.Origins != nil {
		c.Origins = overlay.Origins
	}
	if overlay.AllowedMethods != nil {
		c.AllowedMethods = overlay.AllowedMethods
	}
	if overlay.AllowedHeaders != nil {
		c.AllowedHeaders = overlay.AllowedHeaders
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}

func (c *CORSConfig) loadDefaults() {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{"Content-Type", "Authorization", RequestIDHeader}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}
}

func (c *CORSConfig) loadEnv(env *CORSEnv) {
	if b, ok := envBool(env.Enabled); ok {
		c.Enabled = b
	}
	if list := envList(env.Origins); list != nil {
		c.Origins = list
	}
	if list := envList(env.AllowedMethods); list != nil {
		c.AllowedMethods = list
	}
	if list := envList(env.AllowedHeaders); list != nil {
		c.AllowedHeaders = list
	}
	if b, ok := envBool(env.AllowCredentials); ok {
		c.AllowCredentials = b
	}
	if env.MaxAge != "" {
		if n, err := strconv.Atoi(os.Getenv(env.MaxAge)); err == nil {
			c.MaxAge = n
		}
	}
}

func envBool(name string) (bool, bool) {
	if name == "" {
		return false, false
	}
	b, err := strconv.ParseBool(os.Getenv(name))
	return b, err == nil
}

func envList(name string) []string {
	if name == "" {
		return nil
	}
	v := os.Getenv(name)
	if v == "" {
		return nil
	}

	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
