package scripture

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// maxChapterSpan bounds chapter range expansion to the longest book (Psalms, 150).
var maxChapterSpan = longestBook()

// segment is a single reference: Book Chapter[:Verse][-[Chapter:]Verse].
// Whitespace is significant: it is only allowed inside the book name and
// between the book and the chapter.
type segment struct {
	Book      string `@Book Space`
	Chapter   int    `@Number`
	Verse     *int   `( ":" @Number )?`
	RangeHead *int   `( "-" @Number`
	RangeTail *int   `  ( ":" @Number )? )?`
}

var segmentLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Optional numeral, optional single space, then words separated by single spaces.
	// Examples: John, 1 John, 1John, Song of Solomon
	{Name: "Book", Pattern: `\d?\s?[A-Za-z]+(?:\s[A-Za-z]+)*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:-]`},
	{Name: "Space", Pattern: `\s+`},
})

var segmentParser = participle.MustBuild[segment](
	participle.Lexer(segmentLexer),
)

func parseSegment(text string) (Reference, error) {
	seg, err := segmentParser.ParseString("", text)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q: %v", ErrInvalidReference, text, err)
	}

	chapters, err := seg.chapters()
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q: %v", ErrInvalidReference, text, err)
	}

	return Reference{Book: seg.Book, Chapters: chapters}, nil
}

// chapters resolves the range part of the segment.
// "-N" is an end chapter when no start verse was given and an end verse
// otherwise; "-N:M" is always an end chapter and end verse.
// An end chapter of 0 counts as absent, and a cross-chapter verse range
// needs non-zero start and end verses.
func (s *segment) chapters() ([]Chapter, error) {
	start := s.Chapter
	startVerse := s.Verse

	var endChapter, endVerse *int
	switch {
	case s.RangeTail != nil:
		endChapter, endVerse = s.RangeHead, s.RangeTail
	case s.RangeHead != nil && startVerse != nil:
		endVerse = s.RangeHead
	case s.RangeHead != nil:
		endChapter = s.RangeHead
	}

	if !nonZero(endChapter) || *endChapter == start {
		return []Chapter{{Number: start, StartVerse: startVerse, EndVerse: endVerse}}, nil
	}

	end := *endChapter
	if end-start+1 > maxChapterSpan {
		return nil, fmt.Errorf("chapter range %d-%d exceeds %d chapters", start, end, maxChapterSpan)
	}

	if nonZero(startVerse) && nonZero(endVerse) {
		chapters := []Chapter{{Number: start, StartVerse: startVerse}}
		for n := start + 1; n < end; n++ {
			chapters = append(chapters, Chapter{Number: n})
		}
		return append(chapters, Chapter{Number: end, StartVerse: intPtr(1), EndVerse: endVerse}), nil
	}

	chapters := []Chapter{}
	for n := start; n <= end; n++ {
		chapters = append(chapters, Chapter{Number: n})
	}
	return chapters, nil
}

func nonZero(n *int) bool {
	return n != nil && *n != 0
}
