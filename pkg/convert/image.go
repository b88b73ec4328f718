package convert

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// toPNG re-encodes raster images as PNG. Data that is already PNG is
// returned as is; undecodable data (EMF, WMF, SVG) is returned unchanged
// with ok set to false.
func toPNG(data []byte) (out []byte, ok bool) {
	if bytes.HasPrefix(data, pngSignature) {
		return data, true
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, false
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return data, false
	}
	return buf.Bytes(), true
}
