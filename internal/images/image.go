// Package images stores uploaded images and the images extracted during
// document conversion.
package images

import (
	"path"
	"slices"
	"strings"
)

// Key prefixes accepted from upload requests.
var Prefixes = []string{
	"article-images",
	"category-images",
	"devotional-images",
}

// Content types accepted for image uploads.
var ContentTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

// Upload identifies a stored image.
type Upload struct {
	FileKey string `json:"fileKey"`
	FileURL string `json:"fileUrl"`
}

// ValidPrefix reports whether key is an accepted upload prefix.
func ValidPrefix(key string) bool {
	return slices.Contains(Prefixes, key)
}

// ValidContentType reports whether contentType is an accepted image type.
func ValidContentType(contentType string) bool {
	return slices.Contains(ContentTypes, contentType)
}

// UploadKey builds the requested key for a file posted under prefix:
// {prefix}/{filename without extension}.{subtype}.
func UploadKey(prefix, filename, contentType string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.TrimSuffix(name, path.Ext(name))
	if name == "" || name == "." || name == "/" || name == ".." {
		name = "image"
	}

	_, subtype, _ := strings.Cut(contentType, "/")
	return prefix + "/" + name + "." + subtype
}

// storageKey inserts id before the extension of key and replaces spaces:
// "a/b c.png" becomes "a/b_c-{id}.png".
func storageKey(key, id string) string {
	ext := path.Ext(key)
	base := strings.TrimSuffix(key, ext)
	return strings.ReplaceAll(base+"-"+id+ext, " ", "_")
}
