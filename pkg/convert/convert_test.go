package convert_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/convert"
	"github.com/JaimeStill/ministry-cms/pkg/docx/docxtest"
	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

func newConverter() *convert.Converter {
	return convert.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type upload struct {
	key         string
	contentType string
	data        []byte
}

type recordingSink struct {
	uploads []upload
}

func (s *recordingSink) sink(ctx context.Context, data []byte, key, contentType string) (string, error) {
	s.uploads = append(s.uploads, upload{key: key, contentType: contentType, data: data})
	return "https://cdn.example.com/" + key, nil
}

func ptr(n int) *int { return &n }

func TestConvert_Passages(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantHTML string
		want     []scripture.Reference
	}{
		{
			name:     "single verse",
			body:     docxtest.Paragraph("$$John 3:16$$"),
			wantHTML: `<p><span class="bible-ref" data-book="John" data-chapters='[{"number":3,"startVerse":16}]'>John 3:16</span></p>`,
			want: []scripture.Reference{
				{Book: "John", Chapters: []scripture.Chapter{{Number: 3, StartVerse: ptr(16)}}},
			},
		},
		{
			name:     "chapter range",
			body:     docxtest.Paragraph("$$2 Samuel 22-23$$"),
			wantHTML: `<p><span class="bible-ref" data-book="2 Samuel" data-chapters='[{"number":22},{"number":23}]'>2 Samuel 22-23</span></p>`,
			want: []scripture.Reference{
				{Book: "2 Samuel", Chapters: []scripture.Chapter{{Number: 22}, {Number: 23}}},
			},
		},
		{
			name:     "cross chapter range",
			body:     docxtest.Paragraph("$$2 Samuel 22:1-23:10$$"),
			wantHTML: `<p><span class="bible-ref" data-book="2 Samuel" data-chapters='[{"number":22,"startVerse":1},{"number":23,"startVerse":1,"endVerse":10}]'>2 Samuel 22:1-23:10</span></p>`,
			want: []scripture.Reference{
				{Book: "2 Samuel", Chapters: []scripture.Chapter{
					{Number: 22, StartVerse: ptr(1)},
					{Number: 23, StartVerse: ptr(1), EndVerse: ptr(10)},
				}},
			},
		},
		{
			name:     "continuation",
			body:     docxtest.Paragraph("$$Matthew 7:1-6;8:1-23$$"),
			wantHTML: `<p><span class="bible-ref" data-book="Matthew" data-chapters='[{"number":7,"startVerse":1,"endVerse":6},{"number":8,"startVerse":1,"endVerse":23}]'>Matthew 7:1-6;8:1-23</span></p>`,
			want: []scripture.Reference{
				{Book: "Matthew", Chapters: []scripture.Chapter{
					{Number: 7, StartVerse: ptr(1), EndVerse: ptr(6)},
					{Number: 8, StartVerse: ptr(1), EndVerse: ptr(23)},
				}},
			},
		},
		{
			name:     "invalid reference keeps text",
			body:     docxtest.Paragraph("$$not a valid reference!!$$"),
			wantHTML: `<p>not a valid reference!!</p>`,
			want:     []scripture.Reference{},
		},
		{
			name:     "emphasis",
			body:     docxtest.Paragraph("**important**"),
			wantHTML: `<p><blockquote>important</blockquote></p>`,
			want:     []scripture.Reference{},
		},
		{
			name:     "two references in order",
			body:     docxtest.Paragraph("Read $$Psalm 23$$ then $$John 10:11$$."),
			wantHTML: `<p>Read <span class="bible-ref" data-book="Psalm" data-chapters='[{"number":23}]'>Psalm 23</span> then <span class="bible-ref" data-book="John" data-chapters='[{"number":10,"startVerse":11}]'>John 10:11</span>.</p>`,
			want: []scripture.Reference{
				{Book: "Psalm", Chapters: []scripture.Chapter{{Number: 23}}},
				{Book: "John", Chapters: []scripture.Chapter{{Number: 10, StartVerse: ptr(11)}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			doc := docxtest.Document{Body: tt.body}

			result, err := newConverter().Convert(context.Background(), doc.MustBytes(), "article-documents", sink.sink)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}

			if result.HTML != tt.wantHTML {
				t.Errorf("HTML = %q, want %q", result.HTML, tt.wantHTML)
			}

			if len(result.BiblePassages) != len(tt.want) {
				t.Fatalf("len(BiblePassages) = %d, want %d", len(result.BiblePassages), len(tt.want))
			}
			for i := range tt.want {
				if got, want := result.BiblePassages[i].String(), tt.want[i].String(); got != want {
					t.Errorf("BiblePassages[%d] = %q, want %q", i, got, want)
				}
			}

			if len(result.ListOfImages) != 0 {
				t.Errorf("ListOfImages = %v, want empty", result.ListOfImages)
			}
			if len(sink.uploads) != 0 {
				t.Errorf("sink called %d times, want 0", len(sink.uploads))
			}
		})
	}
}

func TestConvert_Images(t *testing.T) {
	var jpg bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	if err := jpeg.Encode(&jpg, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	doc := docxtest.Document{
		Relationships: []docxtest.Relationship{
			{ID: "rId5", Type: docxtest.ImageRelationship, Target: "media/image1.jpeg"},
			{ID: "rId6", Type: docxtest.ImageRelationship, Target: "media/image2.emf"},
		},
		Media: map[string][]byte{
			"image1.jpeg": jpg.Bytes(),
			"image2.emf":  []byte("not a raster image"),
		},
		Body: `<w:p>` + docxtest.Image("rId5", "Sunrise") + `</w:p>` +
			docxtest.Paragraph("between") +
			`<w:p>` + docxtest.Image("rId6", "") + `</w:p>`,
	}

	sink := &recordingSink{}
	result, err := newConverter().Convert(context.Background(), doc.MustBytes(), "article-documents", sink.sink)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(sink.uploads) != 2 {
		t.Fatalf("sink called %d times, want 2", len(sink.uploads))
	}

	keyPattern := regexp.MustCompile(`^article-documents/[0-9a-f-]{36}\.png$`)
	for i, u := range sink.uploads {
		if !keyPattern.MatchString(u.key) {
			t.Errorf("uploads[%d].key = %q, want {prefix}/{uuid}.png", i, u.key)
		}
		if u.contentType != "image/png" {
			t.Errorf("uploads[%d].contentType = %q, want image/png", i, u.contentType)
		}
	}

	if sink.uploads[0].key == sink.uploads[1].key {
		t.Error("image keys should be unique")
	}

	if !bytes.HasPrefix(sink.uploads[0].data, []byte("\x89PNG")) {
		t.Error("jpeg image was not re-encoded as png")
	}
	if string(sink.uploads[1].data) != "not a raster image" {
		t.Error("undecodable image should be passed through unchanged")
	}

	if len(result.ListOfImages) != 2 {
		t.Fatalf("len(ListOfImages) = %d, want 2", len(result.ListOfImages))
	}
	for i, u := range sink.uploads {
		url := "https://cdn.example.com/" + u.key
		if result.ListOfImages[i] != url {
			t.Errorf("ListOfImages[%d] = %q, want %q", i, result.ListOfImages[i], url)
		}
		if !strings.Contains(result.HTML, `src="`+url+`"`) {
			t.Errorf("HTML missing img for %q: %s", url, result.HTML)
		}
	}

	if len(result.Messages) != 1 || !strings.Contains(result.Messages[0].Message, "image2.emf") {
		t.Errorf("Messages = %v, want one warning for image2.emf", result.Messages)
	}
}

func TestConvert_SinkError(t *testing.T) {
	doc := docxtest.Document{
		Relationships: []docxtest.Relationship{
			{ID: "rId5", Type: docxtest.ImageRelationship, Target: "media/image1.png"},
		},
		Media: map[string][]byte{"image1.png": []byte("\x89PNG\r\n\x1a\n")},
		Body:  `<w:p>` + docxtest.Image("rId5", "") + `</w:p>`,
	}

	errStorage := errors.New("bucket unavailable")
	sink := func(ctx context.Context, data []byte, key, contentType string) (string, error) {
		return "", errStorage
	}

	result, err := newConverter().Convert(context.Background(), doc.MustBytes(), "article-documents", sink)
	if result != nil {
		t.Error("result should be nil on sink failure")
	}
	if !errors.Is(err, convert.ErrImageSink) {
		t.Errorf("error = %v, want ErrImageSink", err)
	}
	if !errors.Is(err, errStorage) {
		t.Errorf("error = %v, want wrapped sink error", err)
	}
}

func TestConvert_DecodeError(t *testing.T) {
	sink := &recordingSink{}

	result, err := newConverter().Convert(context.Background(), []byte("not a docx"), "article-documents", sink.sink)
	if result != nil {
		t.Error("result should be nil on decode failure")
	}
	if !errors.Is(err, convert.ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestConvert_NoSink(t *testing.T) {
	doc := docxtest.Document{Body: docxtest.Paragraph("text")}

	_, err := newConverter().Convert(context.Background(), doc.MustBytes(), "article-documents", nil)
	if !errors.Is(err, convert.ErrNoSink) {
		t.Errorf("error = %v, want ErrNoSink", err)
	}
}

func TestConvert_SanitizesLinks(t *testing.T) {
	doc := docxtest.Document{
		Relationships: []docxtest.Relationship{
			{ID: "rId9", Type: docxtest.HyperlinkRelationship, Target: "javascript:alert(1)", External: true},
		},
		Body: `<w:p><w:hyperlink r:id="rId9">` + docxtest.Run("click") + `</w:hyperlink></w:p>`,
	}

	sink := &recordingSink{}
	result, err := newConverter().Convert(context.Background(), doc.MustBytes(), "article-documents", sink.sink)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if strings.Contains(result.HTML, "javascript:") {
		t.Errorf("HTML contains script url: %s", result.HTML)
	}
	if !strings.Contains(result.HTML, "click") {
		t.Errorf("HTML lost link text: %s", result.HTML)
	}
}
