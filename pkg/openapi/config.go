package openapi

import (
	"fmt"
	"net/mail"
	"os"
	"strings"
)

// Config describes the Info and Servers sections of the served document.
type Config struct {
	Title        string   `toml:"title"`
	Description  string   `toml:"description"`
	ContactName  string   `toml:"contact_name"`
	ContactEmail string   `toml:"contact_email"`
	Servers      []string `toml:"servers"`
}

// ConfigEnv names the environment variables read by Finalize. Servers is a
// comma-separated list.
type ConfigEnv struct {
	Title        string
	Description  string
	ContactEmail string
	Servers      string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.ContactName != "" {
		c.ContactName = overlay.ContactName
	}
	if overlay.ContactEmail != "" {
		c.ContactEmail = overlay.ContactEmail
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}

// Apply copies the configured metadata onto spec.
func (c *Config) Apply(spec *Spec) {
	spec.SetDescription(c.Description)
	if c.ContactName != "" || c.ContactEmail != "" {
		spec.Info.Contact = &Contact{Name: c.ContactName, Email: c.ContactEmail}
	}
	for _, url := range c.Servers {
		spec.AddServer(url)
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Ministry CMS API"
	}
	if c.Description == "" {
		c.Description = "Content backend for articles, uploaded media, and Word document conversion with scripture reference annotation."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := lookup(env.Title); v != "" {
		c.Title = v
	}
	if v := lookup(env.Description); v != "" {
		c.Description = v
	}
	if v := lookup(env.ContactEmail); v != "" {
		c.ContactEmail = v
	}
	if v := lookup(env.Servers); v != "" {
		c.Servers = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Servers = append(c.Servers, s)
			}
		}
	}
}

func (c *Config) validate() error {
	if c.ContactEmail != "" {
		if _, err := mail.ParseAddress(c.ContactEmail); err != nil {
			return fmt.Errorf("invalid contact_email: %w", err)
		}
	}
	for i, s := range c.Servers {
		c.Servers[i] = strings.TrimSuffix(s, "/")
	}
	return nil
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
