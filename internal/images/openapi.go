package images

import "github.com/JaimeStill/ministry-cms/pkg/openapi"

type spec struct {
	Upload  *openapi.Operation
	Schemas map[string]*openapi.Schema
}

// Spec contains the OpenAPI definitions for image uploads.
var Spec = spec{
	Upload: &openapi.Operation{
		Summary:     "Upload image",
		Description: "Stores an image under the given key prefix and returns its key and public URL",
		Parameters: []*openapi.Parameter{
			openapi.EnumParam("key", "Storage key prefix", true, Prefixes...),
		},
		RequestBody: openapi.RequestBodyMultipart(FormField, "JPEG, PNG, WebP or GIF image"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Image stored", "ImageUpload"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"ImageUpload": {
			Type:     "object",
			Required: []string{"fileKey", "fileUrl"},
			Properties: map[string]*openapi.Property{
				"fileKey": {Type: "string", Example: "article-images/cover-3f0c9f8e-2d7a-4d8e-9a57-0a4f4f2d9b61.png"},
				"fileUrl": {Type: "string", Example: "/api/blobs/article-images/cover-3f0c9f8e-2d7a-4d8e-9a57-0a4f4f2d9b61.png"},
			},
		},
	},
}
