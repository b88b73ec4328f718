// Package scripture parses Bible reference text such as "John 3:16",
// "2 Samuel 22:1-23:10", or "Matthew 7:1-6;8:1-23" into structured references.
package scripture

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidReference indicates text that does not match the reference grammar.
var ErrInvalidReference = errors.New("scripture: invalid reference")

// Reference identifies a book and the chapters, with optional verse bounds, it covers.
type Reference struct {
	Book     string    `json:"book"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter is a chapter number with optional start and end verses.
// Absent verses are omitted from JSON output.
type Chapter struct {
	Number     int  `json:"number"`
	StartVerse *int `json:"startVerse,omitempty"`
	EndVerse   *int `json:"endVerse,omitempty"`
}

// String renders the reference in canonical form, e.g. "Matthew 7:1-6; 8:1-23".
func (r Reference) String() string {
	parts := make([]string, len(r.Chapters))
	for i, c := range r.Chapters {
		parts[i] = c.String()
	}
	if len(parts) == 0 {
		return r.Book
	}
	return r.Book + " " + strings.Join(parts, "; ")
}

func (c Chapter) String() string {
	s := strconv.Itoa(c.Number)
	switch {
	case c.StartVerse != nil && c.EndVerse != nil:
		return fmt.Sprintf("%s:%d-%d", s, *c.StartVerse, *c.EndVerse)
	case c.StartVerse != nil:
		return fmt.Sprintf("%s:%d", s, *c.StartVerse)
	case c.EndVerse != nil:
		return fmt.Sprintf("%s:1-%d", s, *c.EndVerse)
	default:
		return s
	}
}

var continuation = regexp.MustCompile(`^(\d+)(?::(\d+)(?:-(\d+))?)?`)

// Parse converts reference text into a Reference.
//
// Segments separated by ";" extend the first segment: a segment starting with
// a digit is read as Chapter[:Verse[-Verse]] of the same book, any other
// segment is parsed as a full reference whose chapters are appended.
// Later segments that fail to parse are skipped.
func Parse(text string) (Reference, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reference{}, fmt.Errorf("%w: empty text", ErrInvalidReference)
	}

	segments := strings.Split(text, ";")

	ref, err := parseSegment(strings.TrimSpace(segments[0]))
	if err != nil {
		return Reference{}, err
	}

	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)

		if m := continuation.FindStringSubmatch(seg); m != nil {
			if c, ok := continuationChapter(m); ok {
				ref.Chapters = append(ref.Chapters, c)
			}
			continue
		}

		extra, err := parseSegment(seg)
		if err != nil {
			continue
		}
		ref.Chapters = append(ref.Chapters, extra.Chapters...)
	}

	return ref, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(text string) Reference {
	ref, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ref
}

// continuationChapter reports false when a number does not fit in an int.
func continuationChapter(m []string) (Chapter, bool) {
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Chapter{}, false
	}
	start, ok := atoiPtr(m[2])
	if !ok {
		return Chapter{}, false
	}
	end, ok := atoiPtr(m[3])
	if !ok {
		return Chapter{}, false
	}
	return Chapter{Number: n, StartVerse: start, EndVerse: end}, true
}

func atoiPtr(s string) (*int, bool) {
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func intPtr(n int) *int {
	return &n
}
