package docx

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

var headings = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// plainStyles render as ordinary paragraphs without a warning.
var plainStyles = map[string]bool{
	"normal":         true,
	"normal (web)":   true,
	"list paragraph": true,
	"body text":      true,
	"no spacing":     true,
	"plain text":     true,
	"default":        true,
}

// blockTag maps a paragraph style to its HTML element, recording a warning
// for styles with no mapping.
func (w *walker) blockTag(styleID string) atom.Atom {
	if styleID == "" {
		return atom.P
	}

	name := w.pkg.styles[styleID]
	if name == "" {
		name = styleID
	}

	if level := headingLevel(name); level > 0 {
		return headings[level-1]
	}
	if level := headingLevel(styleID); level > 0 {
		return headings[level-1]
	}

	if !plainStyles[strings.ToLower(name)] {
		w.warn(fmt.Sprintf("Unrecognised paragraph style: '%s' (Style ID: %s)", name, styleID))
	}
	return atom.P
}

// headingLevel returns 1-6 for title and heading styles, 0 otherwise.
// Localized names such as "Titre 2" and "Überschrift 3" are accepted.
func headingLevel(style string) int {
	lower := strings.ReplaceAll(strings.ToLower(style), " ", "")

	switch lower {
	case "title":
		return 1
	case "subtitle":
		return 2
	}

	for _, prefix := range []string{"heading", "titre", "überschrift"} {
		if rest, ok := strings.CutPrefix(lower, prefix); ok {
			if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
				return int(rest[0] - '0')
			}
		}
	}
	return 0
}
