package bible

import "github.com/JaimeStill/ministry-cms/pkg/openapi"

type spec struct {
	Books   *openapi.Operation
	Book    *openapi.Operation
	Chapter *openapi.Operation
	Schemas map[string]*openapi.Schema
}

// Spec contains OpenAPI operation definitions for the book catalog.
var Spec = spec{
	Books: &openapi.Operation{
		Summary:     "List book names",
		Description: "Returns book names in canonical order",
		Parameters: []*openapi.Parameter{
			openapi.EnumParam("key", "Testament", true, KeyAll, KeyOld, KeyNew),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Book names",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Book: &openapi.Operation{
		Summary: "Get book",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("book_name", "string", "Book name or abbreviation, e.g. \"1 John\" or \"1John\"", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Book", "BibleBook"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Chapter: &openapi.Operation{
		Summary: "Get chapter",
		Parameters: []*openapi.Parameter{
			{Name: "book", In: "path", Required: true, Description: "Book name or abbreviation", Schema: &openapi.Schema{Type: "string"}},
			openapi.QueryParam("chapter", "integer", "1-based chapter number", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Chapter", "BibleChapter"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"BibleBook": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"name":      {Type: "string"},
				"abbrev":    {Type: "string", Description: "OSIS book identifier"},
				"testament": {Type: "string", Description: "old or new"},
				"chapters":  {Type: "integer"},
			},
		},
		"BibleChapter": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"name":    {Type: "string"},
				"abbrev":  {Type: "string"},
				"chapter": {Type: "integer"},
				"verses":  {Type: "integer", Description: "Verse count"},
			},
		},
	},
}
