// Package convert turns Word documents into annotated HTML.
//
// A conversion decodes the document, uploads every embedded image through an
// ImageSink, sanitizes the markup, rewrites **emphasis** spans into block
// quotations, and replaces $$reference$$ spans with annotated scripture spans.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/JaimeStill/ministry-cms/pkg/docx"
	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

// ImageContentType is the content type every uploaded image is stored with.
const ImageContentType = "image/png"

var (
	// ErrDecode indicates the document could not be decoded.
	ErrDecode = errors.New("convert: decode failed")

	// ErrImageSink indicates the image sink rejected an upload.
	ErrImageSink = errors.New("convert: image upload failed")

	// ErrNoSink indicates Convert was called without an image sink.
	ErrNoSink = errors.New("convert: image sink required")
)

// ImageSink stores image bytes under key and returns the public URL.
type ImageSink func(ctx context.Context, data []byte, key, contentType string) (string, error)

// Result is the output of a conversion.
type Result struct {
	HTML          string                `json:"html"`
	Messages      []docx.Message        `json:"messages"`
	ListOfImages  []string              `json:"listOfImages"`
	BiblePassages []scripture.Reference `json:"biblePassages"`
}

// Converter performs document conversions. It holds no per-call state and
// is safe for concurrent use.
type Converter struct {
	policy *bluemonday.Policy
	logger *slog.Logger
}

// New creates a Converter that sanitizes decoded markup with the UGC policy.
func New(logger *slog.Logger) *Converter {
	return &Converter{
		policy: bluemonday.UGCPolicy(),
		logger: logger.With("system", "convert"),
	}
}

// Convert decodes document and applies the markup passes.
//
// Each embedded image is normalized to PNG and passed to sink, one at a time
// in document order, under the key {keyPrefix}/{uuid}.png. Any decode or sink
// failure aborts the conversion and no partial result is returned.
func (c *Converter) Convert(ctx context.Context, document []byte, keyPrefix string, sink ImageSink) (*Result, error) {
	if sink == nil {
		return nil, ErrNoSink
	}

	images := []string{}
	var notes []docx.Message

	handler := func(ctx context.Context, img docx.Image) (string, error) {
		data, ok := toPNG(img.Data)
		if !ok {
			notes = append(notes, docx.Message{
				Type:    docx.MessageWarning,
				Message: fmt.Sprintf("Image %s (%s) could not be converted to PNG and was stored unchanged", img.Name, img.ContentType),
			})
		}

		key := fmt.Sprintf("%s/%s.png", keyPrefix, uuid.NewString())

		url, err := sink(ctx, data, key, ImageContentType)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrImageSink, key, err)
		}

		c.logger.Debug("image uploaded", "key", key, "url", url, "bytes", len(data))
		images = append(images, url)
		return url, nil
	}

	decoded, err := docx.Decode(ctx, document, handler)
	if err != nil {
		if errors.Is(err, ErrImageSink) || ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	html := c.policy.Sanitize(decoded.HTML)
	html = Blockquotes(html)
	html, passages := AnnotateReferences(html)

	messages := append(decoded.Messages, notes...)

	c.logger.Info(
		"document converted",
		"key_prefix", keyPrefix,
		"images", len(images),
		"passages", len(passages),
		"messages", len(messages),
	)

	return &Result{
		HTML:          html,
		Messages:      messages,
		ListOfImages:  images,
		BiblePassages: passages,
	}, nil
}
