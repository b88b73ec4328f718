package routes

import "strings"

// specPath converts ServeMux wildcards to OpenAPI templates:
// "{key...}" becomes "{key}" and a trailing "{$}" is dropped.
func specPath(pattern string) string {
	pattern = strings.TrimSuffix(pattern, "{$}")
	return strings.ReplaceAll(pattern, "...}", "}")
}
