// Package middleware composes http.Handler wrappers for the API.
package middleware

import "net/http"

// System accumulates middleware and applies it to a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(h http.Handler) http.Handler
}

type middleware struct {
	stack []func(http.Handler) http.Handler
}

func New() System {
	return &middleware{}
}

func (m *middleware) Use(mw func(http.Handler) http.Handler) {
	m.stack = append(m.stack, mw)
}

// Apply wraps h so the first registered middleware runs outermost.
func (m *middleware) Apply(h http.Handler) http.Handler {
	for i := len(m.stack) - 1; i >= 0; i-- {
		h = m.stack[i](h)
	}
	return h
}
