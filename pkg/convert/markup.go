package convert

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

var (
	emphasisPattern  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	referencePattern = regexp.MustCompile(`\$\$(.*?)\$\$`)
)

// Blockquotes rewrites every **text** span into <blockquote>text</blockquote>.
// Matching is non-greedy and does not nest.
func Blockquotes(html string) string {
	return emphasisPattern.ReplaceAllString(html, "<blockquote>$1</blockquote>")
}

// AnnotateReferences replaces every $$reference$$ span with an annotated
// bible-ref span and returns the parsed references in document order.
// Spans that do not parse lose their markers and keep their inner text.
func AnnotateReferences(html string) (string, []scripture.Reference) {
	passages := []scripture.Reference{}

	matches := referencePattern.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return html, passages
	}

	replacements := make([]string, len(matches))
	for i, m := range matches {
		inner := html[m[2]:m[3]]
		text := strings.TrimSpace(inner)

		ref, err := scripture.Parse(text)
		if err != nil {
			replacements[i] = inner
			continue
		}

		passages = append(passages, ref)
		replacements[i] = referenceSpan(ref, text)
	}

	out := html
	for i := len(matches) - 1; i >= 0; i-- {
		out = out[:matches[i][0]] + replacements[i] + out[matches[i][1]:]
	}

	return out, passages
}

func referenceSpan(ref scripture.Reference, text string) string {
	chapters, _ := json.Marshal(ref.Chapters)

	var sb strings.Builder
	sb.WriteString(`<span class="bible-ref" data-book="`)
	sb.WriteString(ref.Book)
	sb.WriteString(`" data-chapters='`)
	sb.Write(chapters)
	sb.WriteString(`'>`)
	sb.WriteString(text)
	sb.WriteString(`</span>`)
	return sb.String()
}
