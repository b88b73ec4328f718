// Package scalar serves the interactive API reference page, rendered by
// Scalar from the service's OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/module"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Page holds the values rendered into the reference page.
type Page struct {
	Title   string
	SpecURL string
}

// Render executes the page template.
func Render(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewModule mounts the reference page at prefix.
func NewModule(prefix string, page Page) (*module.Module, error) {
	body, err := Render(page)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	return module.New(prefix, mux), nil
}
