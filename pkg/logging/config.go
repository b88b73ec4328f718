package logging

import (
	"os"
	"strconv"
	"strings"
)

// Env names the environment variables read by Finalize.
type Env struct {
	Level  string
	Format string
	Output string
	Source string
}

type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	Output Output `toml:"output"`

	// Source adds the calling file and line to each record.
	Source bool `toml:"source"`
}

func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Output == "" {
		c.Output = OutputStdout
	}
	if env != nil {
		c.loadEnv(env)
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	if err := c.Format.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
	c.Source = c.Source || overlay.Source
}

func (c *Config) loadEnv(env *Env) {
	get := func(name string) string {
		if name == "" {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	}

	if v := get(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := get(env.Format); v != "" {
		c.Format = Format(v)
	}
	if v := get(env.Output); v != "" {
		c.Output = Output(v)
	}
	if v := get(env.Source); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Source = b
		}
	}
}
