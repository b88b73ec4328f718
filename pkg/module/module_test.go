package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/module"
)

func echoPath(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.URL.Path))
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "/", "api", "/api/v1"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, http.HandlerFunc(echoPath))
		})
	}
}

func TestRouter(t *testing.T) {
	api := module.New("/api", http.HandlerFunc(echoPath))
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "api")
			next.ServeHTTP(w, r)
		})
	})

	r := module.NewRouter()
	r.Mount(api)
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("ok"))
	})

	tests := []struct {
		path       string
		wantBody   string
		wantModule string
		wantStatus int
	}{
		{"/api", "/", "api", http.StatusOK},
		{"/api/articles/42", "/articles/42", "api", http.StatusOK},
		{"/healthz", "ok", "", http.StatusOK},
		{"/apix/articles", "404 page not found\n", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
			if got := w.Header().Get("X-Module"); got != tt.wantModule {
				t.Errorf("X-Module = %q, want %q", got, tt.wantModule)
			}
		})
	}
}
