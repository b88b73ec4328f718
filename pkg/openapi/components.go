package openapi

import "maps"

// NewComponents returns the components shared by every domain: the paging
// parameters schema and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Property{
					"page":      {Type: "integer", Description: "1-based page number", Example: 1},
					"limit":     {Type: "integer", Description: "Items per page", Example: 12},
					"search":    {Type: "string", Description: "Case-insensitive search text"},
					"sort":      {Type: "string", Description: "Comma-separated fields, \"-\" prefix for descending", Example: "-createdAt"},
				},
			},
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Property{
					"error": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          errorResponse("Invalid request"),
			"NotFound":            errorResponse("Resource not found"),
			"Conflict":            errorResponse("Resource conflict"),
			"PayloadTooLarge":     errorResponse("Request body exceeds the configured limit"),
			"UnprocessableEntity": errorResponse("Request was well formed but could not be processed"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges responses into the components, replacing same-named entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}
