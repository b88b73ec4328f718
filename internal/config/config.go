// Package config loads the service configuration from config.toml, an
// optional config.{SERVICE_ENV}.toml overlay, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/ministry-cms/pkg/database"
	"github.com/JaimeStill/ministry-cms/pkg/logging"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"
	EnvServiceEnv        = "SERVICE_ENV"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	SSLMode:         "DATABASE_SSL_MODE",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Output: "LOGGING_OUTPUT",
	Source: "LOGGING_SOURCE",
}

var storageEnv = &storage.Env{
	BasePath:      "STORAGE_BASE_PATH",
	PublicURL:     "STORAGE_PUBLIC_URL",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
}

// Config is the root service configuration.
type Config struct {
	Version         string          `toml:"version"`
	Domain          string          `toml:"domain"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Logging         logging.Config  `toml:"logging"`
	Storage         storage.Config  `toml:"storage"`
	Uploads         UploadsConfig   `toml:"uploads"`
	API             APIConfig       `toml:"api"`
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config.toml from the working directory and applies the overlay
// selected by SERVICE_ENV. The result is finalized.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile reads path, applies the SERVICE_ENV overlay found next to it, and
// finalizes the result. A missing base file yields a configuration built from
// defaults and environment only.
func LoadFile(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if overlay := overlayPath(filepath.Dir(path)); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize applies defaults, environment overrides, and validation to every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Uploads.Finalize(); err != nil {
		return fmt.Errorf("uploads: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// Merge applies non-zero overlay values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.Domain != "" {
		c.Domain = overlay.Domain
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Logging.Merge(&overlay.Logging)
	c.Storage.Merge(&overlay.Storage)
	c.Uploads.Merge(&overlay.Uploads)
	c.API.Merge(&overlay.API)
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Database.Name == "" {
		c.Database.Name = "ministry_cms"
	}
	if c.Database.User == "" {
		c.Database.User = "ministry"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv("SERVICE_VERSION"); v != "" {
		c.Version = v
	}
	if v := os.Getenv("SERVICE_DOMAIN"); v != "" {
		c.Domain = v
	}
	if v := os.Getenv("SERVICE_SHUTDOWN_TIMEOUT"); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func overlayPath(dir string) string {
	env := os.Getenv(EnvServiceEnv)
	if env == "" {
		return ""
	}
	path := filepath.Join(dir, fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
