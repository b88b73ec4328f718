// Package module mounts self-contained HTTP handlers under single-segment
// path prefixes, each with its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/ministry-cms/pkg/middleware"
)

// Module serves a handler below a prefix such as "/api". Requests reach the
// handler with the prefix removed.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New panics unless prefix is a single path segment with a leading slash.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the wrapped handler without prefix stripping.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve strips the prefix and dispatches to the wrapped handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""
	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix required")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix %q must start with /", prefix)
	case strings.Contains(prefix[1:], "/") || len(prefix) == 1:
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
