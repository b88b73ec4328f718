// Package documents converts uploaded Word documents into article markup.
package documents

import (
	"path"
	"slices"
	"strings"
)

// FormField is the multipart field carrying the Word document.
const FormField = "word-document"

const docxType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Key prefixes accepted from conversion requests. Images extracted from a
// document are stored below the same prefix.
var Prefixes = []string{
	"article-documents",
	"category-documents",
	"devotional-documents",
}

// Content types accepted for conversion.
var ContentTypes = []string{
	"application/msword",
	docxType,
	"application/wps-office.docx",
}

// ValidPrefix reports whether key is an accepted document prefix.
func ValidPrefix(key string) bool {
	return slices.Contains(Prefixes, key)
}

// ContentType resolves the media type of an upload. Clients that send a
// .docx file as a generic zip or binary stream get the Word type.
func ContentType(declared, filename string) string {
	switch declared {
	case "application/zip", "application/x-zip-compressed", "application/octet-stream":
		if strings.EqualFold(path.Ext(filename), ".docx") {
			return docxType
		}
	}
	return declared
}

// ValidContentType reports whether contentType is an accepted Word type.
func ValidContentType(contentType string) bool {
	return slices.Contains(ContentTypes, contentType)
}
