// Package bible serves the canonical book catalog: book names by testament,
// chapter counts, and verse counts per chapter.
package bible

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

// Testament keys accepted by the books listing.
const (
	KeyAll = "all"
	KeyOld = "old"
	KeyNew = "new"
)

// Book describes a book of the canon.
type Book struct {
	Name      string              `json:"name"`
	Abbrev    string              `json:"abbrev"`
	Testament scripture.Testament `json:"testament"`
	Chapters  int                 `json:"chapters"`
}

// Chapter describes one chapter of a book.
type Chapter struct {
	Name    string `json:"name"`
	Abbrev  string `json:"abbrev"`
	Chapter int    `json:"chapter"`
	Verses  int    `json:"verses"`
}

// BookNames lists book names in canonical order for a testament key.
func BookNames(key string) ([]string, error) {
	var t scripture.Testament
	switch key {
	case KeyAll:
	case KeyOld:
		t = scripture.OldTestament
	case KeyNew:
		t = scripture.NewTestament
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTestament, key)
	}

	books := scripture.Books(t)
	names := make([]string, len(books))
	for i, b := range books {
		names[i] = b.Name
	}
	return names, nil
}

// FindBook resolves a book by name or abbreviation.
func FindBook(name string) (Book, error) {
	b, err := lookup(name)
	if err != nil {
		return Book{}, err
	}
	return Book{
		Name:      b.Name,
		Abbrev:    b.Abbrev,
		Testament: b.Testament,
		Chapters:  b.Chapters(),
	}, nil
}

// FindChapter resolves chapter of a book. chapter is the raw query value.
func FindChapter(name, chapter string) (Chapter, error) {
	b, err := lookup(name)
	if err != nil {
		return Chapter{}, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(chapter))
	if err != nil || n < 1 {
		return Chapter{}, fmt.Errorf("%w: %q", ErrInvalidChapter, chapter)
	}

	verses, ok := b.Verses(n)
	if !ok {
		return Chapter{}, fmt.Errorf("%w: %s %d", ErrChapterNotFound, b.Name, n)
	}

	return Chapter{Name: b.Name, Abbrev: b.Abbrev, Chapter: n, Verses: verses}, nil
}

func lookup(name string) (scripture.Book, error) {
	if strings.TrimSpace(name) == "" {
		return scripture.Book{}, ErrMissingBook
	}
	b, ok := scripture.LookupBook(name)
	if !ok {
		return scripture.Book{}, fmt.Errorf("%w: %q", ErrBookNotFound, name)
	}
	return b, nil
}
