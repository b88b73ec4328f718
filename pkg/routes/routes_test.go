package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/openapi"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func articlesGroup() routes.Group {
	return routes.Group{
		Prefix: "/articles",
		Tags:   []string{"Articles"},
		Schemas: map[string]*openapi.Schema{
			"Article": {Type: "object"},
		},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: write("find"), OpenAPI: &openapi.Operation{Summary: "Find", Tags: []string{"Custom"}}},
			{Method: "POST", Pattern: "/{id}/hits", Handler: write("hit")},
		},
		Children: []routes.Group{
			{
				Prefix: "/files",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/{key...}", Handler: write("file"), OpenAPI: &openapi.Operation{Summary: "File"}},
				},
			},
		},
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Ministry CMS API", "test")

	routes.Register(mux, "/api", spec, articlesGroup())

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/articles", "list"},
		{"GET", "/articles/abc", "find"},
		{"POST", "/articles/abc/hits", "hit"},
		{"GET", "/articles/files/a/b.png", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Ministry CMS API", "test")
	g := articlesGroup()
	g.AddToSpec("/api", spec)

	list := spec.Paths["/api/articles"]
	if list == nil || list.Get == nil {
		t.Fatal("list operation missing")
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Articles" {
		t.Errorf("inherited tags = %v", list.Get.Tags)
	}

	find := spec.Paths["/api/articles/{id}"]
	if find == nil || find.Get.Tags[0] != "Custom" {
		t.Error("explicit tags should be preserved")
	}

	if _, ok := spec.Paths["/api/articles/{id}/hits"]; ok {
		t.Error("routes without OpenAPI should be skipped")
	}

	file := spec.Paths["/api/articles/files/{key}"]
	if file == nil || file.Get.Tags[0] != "Articles" {
		t.Errorf("child path missing or tags not inherited: %+v", file)
	}

	if _, ok := spec.Components.Schemas["Article"]; !ok {
		t.Error("group schemas not added")
	}
}
