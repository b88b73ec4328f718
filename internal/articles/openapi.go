package articles

import "github.com/JaimeStill/ministry-cms/pkg/openapi"

type spec struct {
	List           *openapi.Operation
	Find           *openapi.Operation
	Create         *openapi.Operation
	UpdateMetadata *openapi.Operation
	SetContent     *openapi.Operation
	SetPublished   *openapi.Operation
	Delete         *openapi.Operation
	Restore        *openapi.Operation
	AddHit         *openapi.Operation
	Hits           *openapi.Operation
	Schemas        map[string]*openapi.Schema
}

var idParam = openapi.PathParam("id", "Article UUID")

// Spec contains OpenAPI operation definitions for all article endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List articles",
		Description: "Returns a page of articles that are not deleted, newest first unless sorted",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("limit", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Case-insensitive match on title", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("category", "string", "Filter by category", false),
			openapi.QueryParam("published", "boolean", "Filter by publication state", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of articles", "ArticlePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get article",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Article", "Article"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create article",
		RequestBody: openapi.RequestBodyJSON("CreateArticleCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Article created", "Article"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	UpdateMetadata: &openapi.Operation{
		Summary:     "Update article metadata",
		Description: "Changes title, image and category. Omitted fields are left unchanged",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("UpdateArticleMetadataCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Article updated", "Article"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	SetContent: &openapi.Operation{
		Summary:     "Set article content",
		Description: "Stores the HTML, scripture passages and image URLs produced by document conversion",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("SetArticleContentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Article updated", "Article"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	SetPublished: &openapi.Operation{
		Summary:     "Publish or unpublish article",
		Description: "Deleted articles cannot be published",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("SetArticlePublishedCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Article updated", "Article"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete article",
		Description: "Marks the article deleted and unpublishes it",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Article deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Restore: &openapi.Operation{
		Summary:    "Restore deleted article",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Article restored", "Article"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AddHit: &openapi.Operation{
		Summary:     "Record article hit",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("AddArticleHitCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Recorded hits", "ArticleHits"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Hits: &openapi.Operation{
		Summary:    "List article hits",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Recorded hits", "ArticleHits"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"Article": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":                {Type: "string", Format: "uuid"},
				"title":             {Type: "string"},
				"image":             {Type: "string"},
				"fullText":          {Type: "string", Description: "Converted article HTML"},
				"category":          {Type: "string"},
				"biblePassages":     openapi.ArrayOf("BiblePassage"),
				"listOfImageAssets": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"published":         {Type: "boolean"},
				"isDeleted":         {Type: "boolean"},
				"deletedAt":         {Type: "string", Format: "date-time"},
				"createdAt":         {Type: "string", Format: "date-time"},
				"updatedAt":         {Type: "string", Format: "date-time"},
			},
		},
		"ArticlePageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":       openapi.ArrayOf("Article"),
				"total":      {Type: "integer"},
				"page":       {Type: "integer"},
				"limit":      {Type: "integer"},
				"totalPages": {Type: "integer"},
				"hasNext":    {Type: "boolean"},
			},
		},
		"CreateArticleCommand": {
			Type:     "object",
			Required: []string{"title", "category"},
			Properties: map[string]*openapi.Property{
				"title":    {Type: "string"},
				"image":    {Type: "string"},
				"category": {Type: "string"},
				"fullText": {Type: "string"},
			},
		},
		"UpdateArticleMetadataCommand": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"title":    {Type: "string"},
				"image":    {Type: "string"},
				"category": {Type: "string"},
			},
		},
		"SetArticleContentCommand": {
			Type:     "object",
			Required: []string{"fullText"},
			Properties: map[string]*openapi.Property{
				"fullText":          {Type: "string"},
				"biblePassages":     openapi.ArrayOf("BiblePassage"),
				"listOfImageAssets": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"SetArticlePublishedCommand": {
			Type:     "object",
			Required: []string{"published"},
			Properties: map[string]*openapi.Property{
				"published": {Type: "boolean"},
			},
		},
		"AddArticleHitCommand": {
			Type:     "object",
			Required: []string{"hit"},
			Properties: map[string]*openapi.Property{
				"hit": {Type: "string"},
			},
		},
		"ArticleHits": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"hits": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
	},
}
