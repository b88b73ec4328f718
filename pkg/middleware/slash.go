package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects paths with a trailing slash to the path without it.
// GET and HEAD get 301, other methods 308. "/" is left alone.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				target := strings.TrimSuffix(r.URL.Path, "/")
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				code := http.StatusPermanentRedirect
				if r.Method == http.MethodGet || r.Method == http.MethodHead {
					code = http.StatusMovedPermanently
				}
				http.Redirect(w, r, target, code)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
