package docx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type openList struct {
	level   int
	ordered bool
	node    *html.Node
}

// walker converts the document body into HTML nodes.
type walker struct {
	ctx      context.Context
	pkg      *docPackage
	images   ImageHandler
	warned   map[string]bool
	messages []Message
	lists    []openList
}

func (w *walker) body() ([]*html.Node, error) {
	body := xmlquery.QuerySelector(w.pkg.document, exprBody)
	if body == nil {
		return nil, fmt.Errorf("%w: missing body", ErrInvalidDocument)
	}

	root := elem(atom.Body)
	if err := w.blocks(root, body); err != nil {
		return nil, err
	}

	var nodes []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	return nodes, nil
}

func (w *walker) blocks(parent *html.Node, n *xmlquery.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}

		var err error
		switch c.Data {
		case "p":
			err = w.paragraph(parent, c)
		case "tbl":
			w.lists = nil
			err = w.table(parent, c)
		case "sdt":
			if content := child(c, "sdtContent"); content != nil {
				err = w.blocks(parent, content)
			}
		case "customXml", "ins":
			err = w.blocks(parent, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) paragraph(parent *html.Node, p *xmlquery.Node) error {
	props := child(p, "pPr")
	tag := w.blockTag(attr(child(props, "pStyle"), "val"))

	numPr := child(props, "numPr")
	numID := attr(child(numPr, "numId"), "val")

	if tag == atom.P && numID != "" && numID != "0" {
		level := atoi(attr(child(numPr, "ilvl"), "val"))
		li := elem(atom.Li)
		if err := w.inline(li, p); err != nil {
			return err
		}
		if li.FirstChild != nil {
			w.list(parent, level, w.pkg.ordered(numID, level)).AppendChild(li)
		}
		return nil
	}

	w.lists = nil
	el := elem(tag)
	if err := w.inline(el, p); err != nil {
		return err
	}
	if el.FirstChild != nil {
		parent.AppendChild(el)
	}
	return nil
}

// list returns the list element for an item at level, opening nested lists
// under the previous item and closing deeper or mismatched ones.
func (w *walker) list(parent *html.Node, level int, ordered bool) *html.Node {
	for len(w.lists) > 0 {
		top := w.lists[len(w.lists)-1]
		if top.level > level || (top.level == level && top.ordered != ordered) {
			w.lists = w.lists[:len(w.lists)-1]
			continue
		}
		break
	}

	if n := len(w.lists); n > 0 && w.lists[n-1].level == level {
		return w.lists[n-1].node
	}

	tag := atom.Ul
	if ordered {
		tag = atom.Ol
	}
	list := elem(tag)

	if n := len(w.lists); n > 0 && w.lists[n-1].node.LastChild != nil {
		w.lists[n-1].node.LastChild.AppendChild(list)
	} else {
		parent.AppendChild(list)
	}

	w.lists = append(w.lists, openList{level: level, ordered: ordered, node: list})
	return list
}

func (w *walker) table(parent *html.Node, tbl *xmlquery.Node) error {
	table := elem(atom.Table)

	for row := tbl.FirstChild; row != nil; row = row.NextSibling {
		if row.Type != xmlquery.ElementNode || row.Data != "tr" {
			continue
		}

		tr := elem(atom.Tr)
		for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
			if cell.Type != xmlquery.ElementNode || cell.Data != "tc" {
				continue
			}

			td := elem(atom.Td)
			if span := atoi(attr(child(child(cell, "tcPr"), "gridSpan"), "val")); span > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(span)})
			}

			saved := w.lists
			w.lists = nil
			err := w.blocks(td, cell)
			w.lists = saved
			if err != nil {
				return err
			}

			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}

	parent.AppendChild(table)
	return nil
}

// runFormat is the character formatting applied to a run.
type runFormat struct {
	bold        bool
	italic      bool
	strike      bool
	superscript bool
	subscript   bool
}

func (f runFormat) tags() []atom.Atom {
	var tags []atom.Atom
	if f.bold {
		tags = append(tags, atom.Strong)
	}
	if f.italic {
		tags = append(tags, atom.Em)
	}
	if f.strike {
		tags = append(tags, atom.S)
	}
	if f.superscript {
		tags = append(tags, atom.Sup)
	}
	if f.subscript {
		tags = append(tags, atom.Sub)
	}
	return tags
}

func readFormat(rPr *xmlquery.Node) runFormat {
	if rPr == nil {
		return runFormat{}
	}
	align := attr(child(rPr, "vertAlign"), "val")
	return runFormat{
		bold:        toggle(child(rPr, "b")),
		italic:      toggle(child(rPr, "i")),
		strike:      toggle(child(rPr, "strike")) || toggle(child(rPr, "dstrike")),
		superscript: align == "superscript",
		subscript:   align == "subscript",
	}
}

// inline emits the runs of a paragraph or hyperlink into parent.
func (w *walker) inline(parent *html.Node, n *xmlquery.Node) error {
	var last runFormat
	var tail *html.Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}

		switch c.Data {
		case "r":
			format := readFormat(child(c, "rPr"))
			target := parent
			opened := false
			if tags := format.tags(); len(tags) > 0 {
				if tail == nil || tail != parent.LastChild || format != last {
					tail = wrap(tags)
					parent.AppendChild(tail)
					opened = true
				}
				target = innermost(tail)
			} else {
				tail = nil
			}
			last = format

			if err := w.run(target, c); err != nil {
				return err
			}
			if opened && target.FirstChild == nil {
				parent.RemoveChild(tail)
				tail = nil
			}
		case "hyperlink":
			tail = nil
			a := elem(atom.A)
			if href := w.href(c); href != "" {
				a.Attr = append(a.Attr, html.Attribute{Key: "href", Val: href})
			}
			if err := w.inline(a, c); err != nil {
				return err
			}
			if a.FirstChild != nil {
				parent.AppendChild(a)
			}
		case "ins", "smartTag", "customXml", "fldSimple":
			tail = nil
			if err := w.inline(parent, c); err != nil {
				return err
			}
		case "sdt":
			tail = nil
			if content := child(c, "sdtContent"); content != nil {
				if err := w.inline(parent, content); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (w *walker) href(link *xmlquery.Node) string {
	if id := attr(link, "id"); id != "" {
		if rel, ok := w.pkg.rels[id]; ok {
			return rel.target
		}
	}
	if anchor := attr(link, "anchor"); anchor != "" {
		return "#" + anchor
	}
	return ""
}

func (w *walker) run(parent *html.Node, r *xmlquery.Node) error {
	for c := r.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}

		switch c.Data {
		case "t":
			appendText(parent, c.InnerText())
		case "tab":
			appendText(parent, "\t")
		case "noBreakHyphen":
			appendText(parent, "‑")
		case "br", "cr":
			if t := attr(c, "type"); t == "" || t == "textWrapping" {
				parent.AppendChild(elem(atom.Br))
			}
		case "drawing", "pict", "object":
			if err := w.image(parent, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) image(parent *html.Node, n *xmlquery.Node) error {
	blip := xmlquery.QuerySelector(n, exprBlip)
	if blip == nil {
		return nil
	}

	id := attr(blip, "embed")
	if id == "" {
		id = attr(blip, "id")
	}

	rel, ok := w.pkg.rels[id]
	if !ok || rel.external {
		w.warn(fmt.Sprintf("Could not find image file for a:blip element with id %q", id))
		return nil
	}

	if w.images == nil {
		return nil
	}

	if err := w.ctx.Err(); err != nil {
		return err
	}

	data, err := w.pkg.read(rel.target)
	if err != nil {
		return err
	}

	img := Image{
		Name:        rel.target,
		ContentType: contentTypeFor(rel.target),
		Data:        data,
	}
	if docPr := xmlquery.QuerySelector(n, exprDocPr); docPr != nil {
		img.AltText = attr(docPr, "descr")
	}

	src, err := w.images(w.ctx, img)
	if err != nil {
		return err
	}

	el := elem(atom.Img)
	el.Attr = append(el.Attr, html.Attribute{Key: "src", Val: src})
	if img.AltText != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "alt", Val: img.AltText})
	}
	parent.AppendChild(el)
	return nil
}

func (w *walker) warn(msg string) {
	if w.warned[msg] {
		return
	}
	w.warned[msg] = true
	w.messages = append(w.messages, Message{Type: MessageWarning, Message: msg})
}

func elem(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// wrap nests one element per tag and returns the outermost.
func wrap(tags []atom.Atom) *html.Node {
	outer := elem(tags[0])
	cur := outer
	for _, t := range tags[1:] {
		next := elem(t)
		cur.AppendChild(next)
		cur = next
	}
	return outer
}

func innermost(n *html.Node) *html.Node {
	for n.FirstChild != nil && n.FirstChild.Type == html.ElementNode && n.FirstChild == n.LastChild && isFormatting(n.FirstChild) {
		n = n.FirstChild
	}
	return n
}

func isFormatting(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Strong, atom.Em, atom.S, atom.Sup, atom.Sub:
		return true
	}
	return false
}

func appendText(parent *html.Node, s string) {
	if s == "" {
		return
	}
	if last := parent.LastChild; last != nil && last.Type == html.TextNode {
		last.Data += s
		return
	}
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func child(n *xmlquery.Node, local string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local {
			return c
		}
	}
	return nil
}

func attr(n *xmlquery.Node, local string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// toggle reports whether an on/off property such as w:b is enabled.
func toggle(n *xmlquery.Node) bool {
	if n == nil {
		return false
	}
	switch strings.ToLower(attr(n, "val")) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
