package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/JaimeStill/ministry-cms/internal/documents"
	"github.com/JaimeStill/ministry-cms/internal/images"
	"github.com/JaimeStill/ministry-cms/pkg/convert"
	"github.com/JaimeStill/ministry-cms/pkg/docx/docxtest"
	"github.com/JaimeStill/ministry-cms/pkg/openapi"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

const docxType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystem(t *testing.T) (documents.System, storage.System) {
	t.Helper()

	cfg := &storage.Config{BasePath: t.TempDir()}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	store, err := storage.New(cfg, discard())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	return documents.New(convert.New(discard()), images.New(store, discard()), discard()), store
}

func sampleDocument(t *testing.T) []byte {
	t.Helper()

	var pic bytes.Buffer
	if err := png.Encode(&pic, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	return docxtest.Document{
		Relationships: []docxtest.Relationship{
			{ID: "rId7", Type: docxtest.ImageRelationship, Target: "media/image1.png"},
		},
		Media: map[string][]byte{"image1.png": pic.Bytes()},
		Body: docxtest.Paragraph("For God so loved the world $$John 3:16$$") +
			docxtest.Paragraph("**Be still and know**") +
			`<w:p>` + docxtest.Image("rId7", "Cross") + `</w:p>`,
	}.MustBytes()
}

func TestSystem_Convert(t *testing.T) {
	sys, store := newSystem(t)

	result, err := sys.Convert(context.Background(), sampleDocument(t), "article-documents")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(result.BiblePassages) != 1 || result.BiblePassages[0].Book != "John" {
		t.Errorf("BiblePassages = %+v", result.BiblePassages)
	}
	if !strings.Contains(result.HTML, "<blockquote>Be still and know</blockquote>") {
		t.Errorf("HTML missing blockquote: %s", result.HTML)
	}
	if len(result.ListOfImages) != 1 || !strings.HasPrefix(result.ListOfImages[0], "/api/blobs/article-documents/") {
		t.Fatalf("ListOfImages = %v", result.ListOfImages)
	}

	key := strings.TrimPrefix(result.ListOfImages[0], "/api/blobs/")
	data, err := store.Retrieve(context.Background(), key)
	if err != nil || !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("stored image = %d bytes, %v", len(data), err)
	}
}

func TestSystem_ConvertErrors(t *testing.T) {
	sys, _ := newSystem(t)

	if _, err := sys.Convert(context.Background(), sampleDocument(t), "article-images"); !errors.Is(err, documents.ErrInvalidKey) {
		t.Errorf("image prefix error = %v, want ErrInvalidKey", err)
	}
	if _, err := sys.Convert(context.Background(), []byte("plain text"), "article-documents"); !errors.Is(err, convert.ErrDecode) {
		t.Errorf("garbage document error = %v, want ErrDecode", err)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		declared string
		filename string
		want     string
	}{
		{docxType, "sermon.docx", docxType},
		{"application/zip", "sermon.DOCX", docxType},
		{"application/octet-stream", "sermon.docx", docxType},
		{"application/zip", "archive.zip", "application/zip"},
		{"application/msword", "old.doc", "application/msword"},
	}

	for _, tt := range tests {
		if got := documents.ContentType(tt.declared, tt.filename); got != tt.want {
			t.Errorf("ContentType(%q, %q) = %q, want %q", tt.declared, tt.filename, got, tt.want)
		}
	}
}

func uploadRequest(t *testing.T, target, contentType string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="sermon.docx"`, documents.FormField))
	h.Set("Content-Type", contentType)
	part, _ := mw.CreatePart(h)
	part.Write(data)
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, target, &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestHandler_Convert(t *testing.T) {
	sys, _ := newSystem(t)
	h := documents.NewHandler(sys, discard(), 1<<20)

	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "test"), h.Routes())

	doc := sampleDocument(t)

	tests := []struct {
		name        string
		target      string
		contentType string
		data        []byte
		want        int
	}{
		{"converted", "/documents/word-documents?key=article-documents", docxType, doc, http.StatusCreated},
		{"zip declared", "/documents/word-documents?key=devotional-documents", "application/zip", doc, http.StatusCreated},
		{"bad prefix", "/documents/word-documents?key=article-images", docxType, doc, http.StatusBadRequest},
		{"bad type", "/documents/word-documents?key=article-documents", "application/pdf", doc, http.StatusBadRequest},
		{"undecodable", "/documents/word-documents?key=article-documents", docxType, []byte("not a zip"), http.StatusUnprocessableEntity},
		{"too large", "/documents/word-documents?key=article-documents", docxType, bytes.Repeat([]byte("x"), 3<<19), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, uploadRequest(t, tt.target, tt.contentType, tt.data))

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
			if tt.want != http.StatusCreated {
				return
			}

			var raw map[string]json.RawMessage
			if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for _, key := range []string{"html", "messages", "listOfImages", "biblePassages"} {
				if _, ok := raw[key]; !ok {
					t.Errorf("response missing %q", key)
				}
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad zip", convert.ErrDecode), http.StatusUnprocessableEntity},
		{documents.ErrInvalidType, http.StatusBadRequest},
		{fmt.Errorf("%w: disk", convert.ErrImageSink), http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		if got := documents.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
