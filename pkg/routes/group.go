// Package routes declares HTTP routes together with their OpenAPI operations
// so one declaration feeds both the ServeMux and the API document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/openapi"
)

// Route binds a method and pattern to a handler. Pattern is relative to the
// enclosing group's prefix and may use ServeMux wildcards.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group collects routes under a common prefix. Children nest below the prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds the group's operations to spec with paths below basePath.
// Operations without tags inherit the group's tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, nil, spec)
}

func (g *Group) addToSpec(basePath string, parentTags []string, spec *openapi.Spec) {
	prefix := basePath + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		spec.AddOperation(specPath(prefix+route.Pattern), route.Method, op)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix, tags, spec)
	}
}

// Register mounts every group on mux relative to the mux root and records the
// operations in spec below basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
		g.AddToSpec(basePath, spec)
	}
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}
