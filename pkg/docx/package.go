package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const (
	defaultDocumentPart = "word/document.xml"
	officeDocumentType  = "/officeDocument"
	maxPartSize         = 256 << 20
)

var (
	exprBody         = xpath.MustCompile(`//*[local-name()='body']`)
	exprRelationship = xpath.MustCompile(`//*[local-name()='Relationship']`)
	exprAbstractNum  = xpath.MustCompile(`//*[local-name()='abstractNum']`)
	exprNum          = xpath.MustCompile(`//*[local-name()='num']`)
	exprLevel        = xpath.MustCompile(`*[local-name()='lvl']`)
	exprStyle        = xpath.MustCompile(`//*[local-name()='style']`)
	exprBlip         = xpath.MustCompile(`.//*[local-name()='blip' or local-name()='imagedata']`)
	exprDocPr        = xpath.MustCompile(`.//*[local-name()='docPr']`)
)

type relationship struct {
	target   string
	external bool
}

// docPackage is the subset of an OOXML package the decoder reads.
type docPackage struct {
	files     map[string]*zip.File
	document  *xmlquery.Node
	rels      map[string]relationship
	numbering map[string]map[int]bool
	styles    map[string]string
}

func openPackage(data []byte) (*docPackage, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	pkg := &docPackage{
		files:     make(map[string]*zip.File, len(zr.File)),
		rels:      make(map[string]relationship),
		numbering: make(map[string]map[int]bool),
		styles:    make(map[string]string),
	}
	for _, f := range zr.File {
		pkg.files[strings.TrimPrefix(f.Name, "/")] = f
	}

	docPart := pkg.documentPart()

	pkg.document, err = pkg.parse(docPart)
	if err != nil {
		return nil, err
	}
	if pkg.document == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidDocument, docPart)
	}

	dir, base := path.Split(docPart)
	if err := pkg.loadRelationships(dir, path.Join(dir, "_rels", base+".rels")); err != nil {
		return nil, err
	}
	if err := pkg.loadNumbering(path.Join(dir, "numbering.xml")); err != nil {
		return nil, err
	}
	if err := pkg.loadStyles(path.Join(dir, "styles.xml")); err != nil {
		return nil, err
	}

	return pkg, nil
}

// documentPart resolves the main document through the package relationships,
// falling back to the conventional location.
func (p *docPackage) documentPart() string {
	root, err := p.parse("_rels/.rels")
	if err != nil || root == nil {
		return defaultDocumentPart
	}
	for _, rel := range xmlquery.QuerySelectorAll(root, exprRelationship) {
		if strings.HasSuffix(attr(rel, "Type"), officeDocumentType) {
			return strings.TrimPrefix(attr(rel, "Target"), "/")
		}
	}
	return defaultDocumentPart
}

// parse returns the parsed XML part, or nil when the part is absent.
func (p *docPackage) parse(name string) (*xmlquery.Node, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidDocument, name, err)
	}
	defer rc.Close()

	root, err := xmlquery.Parse(io.LimitReader(rc, maxPartSize))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidDocument, name, err)
	}
	return root, nil
}

func (p *docPackage) read(name string) ([]byte, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing part %s", ErrInvalidDocument, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidDocument, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidDocument, name, err)
	}
	return data, nil
}

func (p *docPackage) loadRelationships(dir, name string) error {
	root, err := p.parse(name)
	if err != nil || root == nil {
		return err
	}

	for _, rel := range xmlquery.QuerySelectorAll(root, exprRelationship) {
		id := attr(rel, "Id")
		target := attr(rel, "Target")
		if id == "" || target == "" {
			continue
		}

		if strings.EqualFold(attr(rel, "TargetMode"), "External") {
			p.rels[id] = relationship{target: target, external: true}
			continue
		}

		if strings.HasPrefix(target, "/") {
			target = strings.TrimPrefix(target, "/")
		} else {
			target = path.Join(dir, target)
		}
		p.rels[id] = relationship{target: target}
	}

	return nil
}

func (p *docPackage) loadNumbering(name string) error {
	root, err := p.parse(name)
	if err != nil || root == nil {
		return err
	}

	abstract := make(map[string]map[int]bool)
	for _, an := range xmlquery.QuerySelectorAll(root, exprAbstractNum) {
		levels := make(map[int]bool)
		for _, lvl := range xmlquery.QuerySelectorAll(an, exprLevel) {
			format := attr(child(lvl, "numFmt"), "val")
			levels[atoi(attr(lvl, "ilvl"))] = format != "" && format != "bullet" && format != "none"
		}
		abstract[attr(an, "abstractNumId")] = levels
	}

	for _, num := range xmlquery.QuerySelectorAll(root, exprNum) {
		id := attr(num, "numId")
		if levels, ok := abstract[attr(child(num, "abstractNumId"), "val")]; ok && id != "" {
			p.numbering[id] = levels
		}
	}

	return nil
}

func (p *docPackage) loadStyles(name string) error {
	root, err := p.parse(name)
	if err != nil || root == nil {
		return err
	}

	for _, style := range xmlquery.QuerySelectorAll(root, exprStyle) {
		if id := attr(style, "styleId"); id != "" {
			p.styles[id] = attr(child(style, "name"), "val")
		}
	}

	return nil
}

// ordered reports whether the list level renders as an ordered list.
func (p *docPackage) ordered(numID string, level int) bool {
	return p.numbering[numID][level]
}
