package openapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

const Version = "3.1.0"

// NewSpec creates an empty document with shared components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    Version,
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation registers op under path for method. Unsupported methods are ignored.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// MarshalJSON renders the document with two-space indentation.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec serves a pre-rendered document.
func ServeSpec(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(data)
	}
}
