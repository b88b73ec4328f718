package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

var (
	// ErrPayloadTooLarge is returned by FormFile when the upload exceeds its limit.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrMissingFile is returned by FormFile when the form has no file under the field.
	ErrMissingFile = errors.New("file is required")
)

// formOverhead is the room left for multipart boundaries and other form fields.
const formOverhead = 1 << 20

// File is a fully read multipart file.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FormFile reads the file posted under field. Files larger than max bytes
// are rejected with ErrPayloadTooLarge. Temporary files created while parsing
// are removed before returning.
func FormFile(w http.ResponseWriter, r *http.Request, field string, max int64) (*File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, max+formOverhead)

	if err := r.ParseMultipartForm(max); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrPayloadTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, field)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	defer file.Close()

	if header.Size > max {
		return nil, ErrPayloadTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingFile, field)
	}

	return &File{
		Filename:    header.Filename,
		ContentType: DetectContentType(header.Header.Get("Content-Type"), data),
		Data:        data,
	}, nil
}

// DetectContentType prefers the declared media type and sniffs data when the
// declaration is missing or generic. Parameters are dropped.
func DetectContentType(declared string, data []byte) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
		return mt
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}
