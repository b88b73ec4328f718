// Package docxtest builds minimal .docx packages in memory for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"strings"
)

const documentTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"><w:body>%s<w:sectPr/></w:body></w:document>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Default Extension="png" ContentType="image/png"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

// Relationship is an entry in word/_rels/document.xml.rels.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Document describes the parts of a package. Body holds raw w:body content,
// Styles raw w:style elements, and Numbering raw w:abstractNum and w:num elements.
type Document struct {
	Body          string
	Styles        string
	Numbering     string
	Relationships []Relationship
	Media         map[string][]byte
}

// Bytes assembles the zip package.
func (d Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := map[string][]byte{
		"[Content_Types].xml": []byte(contentTypes),
		"_rels/.rels":         []byte(packageRels),
		"word/document.xml":   []byte(fmt.Sprintf(documentTemplate, d.Body)),
	}

	if len(d.Relationships) > 0 {
		parts["word/_rels/document.xml.rels"] = []byte(d.relationships())
	}
	if d.Styles != "" {
		parts["word/styles.xml"] = []byte(`<?xml version="1.0" encoding="UTF-8"?><w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + d.Styles + `</w:styles>`)
	}
	if d.Numbering != "" {
		parts["word/numbering.xml"] = []byte(`<?xml version="1.0" encoding="UTF-8"?><w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + d.Numbering + `</w:numbering>`)
	}
	for name, data := range d.Media {
		parts["word/media/"+name] = data
	}

	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustBytes is like Bytes but panics on error.
func (d Document) MustBytes() []byte {
	data, err := d.Bytes()
	if err != nil {
		panic(err)
	}
	return data
}

func (d Document) relationships() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range d.Relationships {
		mode := ""
		if r.External {
			mode = ` TargetMode="External"`
		}
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="%s" Target="%s"%s/>`, r.ID, r.Type, html.EscapeString(r.Target), mode)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// Relationship types.
const (
	ImageRelationship     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	HyperlinkRelationship = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Paragraph returns a single-run paragraph.
func Paragraph(text string) string {
	return `<w:p>` + Run(text) + `</w:p>`
}

// StyledParagraph returns a single-run paragraph with a paragraph style.
func StyledParagraph(styleID, text string) string {
	return `<w:p><w:pPr><w:pStyle w:val="` + styleID + `"/></w:pPr>` + Run(text) + `</w:p>`
}

// ListItem returns a numbered paragraph.
func ListItem(numID string, level int, text string) string {
	return fmt.Sprintf(`<w:p><w:pPr><w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%s"/></w:numPr></w:pPr>%s</w:p>`, level, numID, Run(text))
}

// Run returns a plain run.
func Run(text string) string {
	return `<w:r><w:t xml:space="preserve">` + html.EscapeString(text) + `</w:t></w:r>`
}

// BoldRun returns a bold run.
func BoldRun(text string) string {
	return `<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">` + html.EscapeString(text) + `</w:t></w:r>`
}

// ItalicRun returns an italic run.
func ItalicRun(text string) string {
	return `<w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">` + html.EscapeString(text) + `</w:t></w:r>`
}

// Image returns a run holding an inline DrawingML picture for relationship id.
func Image(id, descr string) string {
	return `<w:r><w:drawing><wp:inline><wp:docPr id="1" name="Picture 1" descr="` + html.EscapeString(descr) + `"/>` +
		`<a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="` + id + `"/></pic:blipFill></pic:pic></a:graphicData></a:graphic>` +
		`</wp:inline></w:drawing></w:r>`
}
