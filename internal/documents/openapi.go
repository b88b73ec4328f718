package documents

import "github.com/JaimeStill/ministry-cms/pkg/openapi"

type spec struct {
	Convert *openapi.Operation
	Schemas map[string]*openapi.Schema
}

// Spec contains the OpenAPI definitions for document conversion.
var Spec = spec{
	Convert: &openapi.Operation{
		Summary: "Convert Word document",
		Description: "Converts a Word document to HTML. **text** becomes a block quotation, " +
			"$$Book Chapter:Verse$$ becomes an annotated scripture reference, and embedded " +
			"images are stored below the key prefix",
		Parameters: []*openapi.Parameter{
			openapi.EnumParam("key", "Key prefix for extracted images", true, Prefixes...),
		},
		RequestBody: openapi.RequestBodyMultipart(FormField, "Word document (.docx)"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Converted document", "ConversionResult"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"ConversionResult": {
			Type:     "object",
			Required: []string{"html", "messages", "listOfImages", "biblePassages"},
			Properties: map[string]*openapi.Property{
				"html":          {Type: "string"},
				"messages":      openapi.ArrayOf("ConversionMessage"),
				"listOfImages":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"biblePassages": openapi.ArrayOf("BiblePassage"),
			},
		},
		"ConversionMessage": {
			Type:     "object",
			Required: []string{"type", "message"},
			Properties: map[string]*openapi.Property{
				"type":    {Type: "string", Example: "warning"},
				"message": {Type: "string"},
			},
		},
		"BiblePassage": {
			Type:     "object",
			Required: []string{"book", "chapters"},
			Properties: map[string]*openapi.Property{
				"book":     {Type: "string", Example: "John"},
				"chapters": openapi.ArrayOf("BibleChapter"),
			},
		},
		"BibleChapter": {
			Type:     "object",
			Required: []string{"number"},
			Properties: map[string]*openapi.Property{
				"number":     {Type: "integer", Example: 3},
				"startVerse": {Type: "integer", Example: 16},
				"endVerse":   {Type: "integer"},
			},
		},
	},
}
