package blobs

import "github.com/JaimeStill/ministry-cms/pkg/openapi"

type spec struct {
	Get *openapi.Operation
}

// Spec contains the OpenAPI definitions for blob retrieval.
var Spec = spec{
	Get: &openapi.Operation{
		Summary:     "Get blob",
		Description: "Returns stored bytes. Responses carry a BLAKE3 ETag and honour If-None-Match and Range",
		Parameters: []*openapi.Parameter{
			{Name: "key", In: "path", Required: true, Description: "Storage key", Schema: &openapi.Schema{Type: "string"}},
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Blob content"},
			304: {Description: "Not modified"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}
