// Package docx decodes Office Open XML word-processing documents into HTML.
//
// The decoder reads the document package from memory, walks word/document.xml,
// and emits paragraphs, headings, run formatting, hyperlinks, lists, tables,
// and images. Embedded images are handed to an ImageHandler which returns the
// URL written into the img element.
package docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrInvalidDocument indicates the input is not a readable .docx package.
var ErrInvalidDocument = errors.New("docx: invalid document")

// Image is an embedded picture discovered in the document.
type Image struct {
	Name        string
	ContentType string
	AltText     string
	Data        []byte
}

// ImageHandler stores an embedded image and returns the URL for its img element.
type ImageHandler func(ctx context.Context, img Image) (string, error)

// Message is a diagnostic produced while decoding.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Message types.
const (
	MessageWarning = "warning"
	MessageError   = "error"
)

// Result holds the decoded HTML and any diagnostics.
type Result struct {
	HTML     string
	Messages []Message
}

// Decode converts a .docx document into HTML.
// Images are passed to images serially in document order; a handler error
// aborts decoding. A nil handler drops images.
func Decode(ctx context.Context, data []byte, images ImageHandler) (*Result, error) {
	pkg, err := openPackage(data)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:      ctx,
		pkg:      pkg,
		images:   images,
		warned:   make(map[string]bool),
		messages: []Message{},
	}

	nodes, err := w.body()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
	}

	return &Result{
		HTML:     buf.String(),
		Messages: w.messages,
	}, nil
}

// contentTypes maps media extensions to MIME types.
var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".emf":  "image/x-emf",
	".wmf":  "image/x-wmf",
}

func contentTypeFor(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "application/octet-stream"
	}
	if ct, ok := contentTypes[strings.ToLower(name[i:])]; ok {
		return ct
	}
	return "application/octet-stream"
}
