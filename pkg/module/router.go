package module

import (
	"net/http"
	"strings"
)

// Router dispatches to mounted modules by first path segment and falls back
// to natively registered handlers.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
}

func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a ServeMux pattern outside every module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}
	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	rest := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return "/" + rest
}
