package scripture_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

func ptr(n int) *int { return &n }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want scripture.Reference
	}{
		{
			name: "single verse",
			text: "John 3:16",
			want: scripture.Reference{Book: "John", Chapters: []scripture.Chapter{
				{Number: 3, StartVerse: ptr(16)},
			}},
		},
		{
			name: "numbered book verse range",
			text: "1 John 4:1-8",
			want: scripture.Reference{Book: "1 John", Chapters: []scripture.Chapter{
				{Number: 4, StartVerse: ptr(1), EndVerse: ptr(8)},
			}},
		},
		{
			name: "whole chapter",
			text: "Psalm 23",
			want: scripture.Reference{Book: "Psalm", Chapters: []scripture.Chapter{
				{Number: 23},
			}},
		},
		{
			name: "chapter range",
			text: "2 Samuel 22-23",
			want: scripture.Reference{Book: "2 Samuel", Chapters: []scripture.Chapter{
				{Number: 22},
				{Number: 23},
			}},
		},
		{
			name: "cross chapter verse range",
			text: "2 Samuel 22:1-23:10",
			want: scripture.Reference{Book: "2 Samuel", Chapters: []scripture.Chapter{
				{Number: 22, StartVerse: ptr(1)},
				{Number: 23, StartVerse: ptr(1), EndVerse: ptr(10)},
			}},
		},
		{
			name: "cross chapter with intermediate chapters",
			text: "Genesis 1:5-4:2",
			want: scripture.Reference{Book: "Genesis", Chapters: []scripture.Chapter{
				{Number: 1, StartVerse: ptr(5)},
				{Number: 2},
				{Number: 3},
				{Number: 4, StartVerse: ptr(1), EndVerse: ptr(2)},
			}},
		},
		{
			name: "end chapter without start verse",
			text: "Genesis 1-3:4",
			want: scripture.Reference{Book: "Genesis", Chapters: []scripture.Chapter{
				{Number: 1},
				{Number: 2},
				{Number: 3},
			}},
		},
		{
			name: "same chapter on both sides",
			text: "Romans 8:1-8:11",
			want: scripture.Reference{Book: "Romans", Chapters: []scripture.Chapter{
				{Number: 8, StartVerse: ptr(1), EndVerse: ptr(11)},
			}},
		},
		{
			name: "continuation segment",
			text: "Matthew 7:1-6;8:1-23",
			want: scripture.Reference{Book: "Matthew", Chapters: []scripture.Chapter{
				{Number: 7, StartVerse: ptr(1), EndVerse: ptr(6)},
				{Number: 8, StartVerse: ptr(1), EndVerse: ptr(23)},
			}},
		},
		{
			name: "continuation with whitespace and bare chapter",
			text: "  Luke 2:1-7; 3 ",
			want: scripture.Reference{Book: "Luke", Chapters: []scripture.Chapter{
				{Number: 2, StartVerse: ptr(1), EndVerse: ptr(7)},
				{Number: 3},
			}},
		},
		{
			name: "other book segment contributes chapters only",
			text: "John 1:1; Genesis 1:1-3",
			want: scripture.Reference{Book: "John", Chapters: []scripture.Chapter{
				{Number: 1, StartVerse: ptr(1)},
				{Number: 1, StartVerse: ptr(1), EndVerse: ptr(3)},
			}},
		},
		{
			name: "unparseable later segment skipped",
			text: "John 1:1; ???; 2:4",
			want: scripture.Reference{Book: "John", Chapters: []scripture.Chapter{
				{Number: 1, StartVerse: ptr(1)},
				{Number: 2, StartVerse: ptr(4)},
			}},
		},
		{
			name: "multi word book",
			text: "Song of Solomon 2:1",
			want: scripture.Reference{Book: "Song of Solomon", Chapters: []scripture.Chapter{
				{Number: 2, StartVerse: ptr(1)},
			}},
		},
		{
			name: "zero end chapter counts as absent",
			text: "John 3:1-0:5",
			want: scripture.Reference{Book: "John", Chapters: []scripture.Chapter{
				{Number: 3, StartVerse: ptr(1), EndVerse: ptr(5)},
			}},
		},
		{
			name: "zero start verse gives chapter range",
			text: "John 3:0-4:5",
			want: scripture.Reference{Book: "John", Chapters: []scripture.Chapter{
				{Number: 3},
				{Number: 4},
			}},
		},
		{
			name: "overflowing continuation chapter skipped",
			text: "Jude 1;99999999999999999999",
			want: scripture.Reference{Book: "Jude", Chapters: []scripture.Chapter{
				{Number: 1},
			}},
		},
		{
			name: "overflowing continuation verse skipped",
			text: "Jude 1:3; 1:99999999999999999999; 1:20",
			want: scripture.Reference{Book: "Jude", Chapters: []scripture.Chapter{
				{Number: 1, StartVerse: ptr(3)},
				{Number: 1, StartVerse: ptr(20)},
			}},
		},
		{
			name: "descending verse range kept",
			text: "John 10:5-2",
			want: scripture.Reference{Book: "John", Chapters: []scripture.Chapter{
				{Number: 10, StartVerse: ptr(5), EndVerse: ptr(2)},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scripture.Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"not a valid reference!!",
		"John",
		"John3:16",
		"John 3: 16",
		"John 3:16-",
		"12 John 3:16",
		"Song  of Solomon 2:1",
		"3:16",
		"; John 3:16",
		"Genesis 1-500",
		"Psalms 1-151",
		"Psalms 99999999999999999999",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := scripture.Parse(text)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", text)
			}
			if !errors.Is(err, scripture.ErrInvalidReference) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidReference", text, err)
			}
		})
	}
}

func TestParse_ChapterSpan(t *testing.T) {
	ref, err := scripture.Parse("Psalms 1-150")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(ref.Chapters) != 150 {
		t.Fatalf("chapters = %d, want 150", len(ref.Chapters))
	}
	if first, last := ref.Chapters[0].Number, ref.Chapters[149].Number; first != 1 || last != 150 {
		t.Errorf("chapters run %d..%d, want 1..150", first, last)
	}

	ref, err = scripture.Parse("Psalms 119:1-150:6")
	if err != nil {
		t.Fatalf("Parse() cross chapter error = %v", err)
	}
	if len(ref.Chapters) != 32 {
		t.Errorf("cross chapter chapters = %d, want 32", len(ref.Chapters))
	}

	if _, err := scripture.Parse("Psalms 1-151"); !errors.Is(err, scripture.ErrInvalidReference) {
		t.Errorf("Parse(Psalms 1-151) error = %v, want ErrInvalidReference", err)
	}
}

func TestChapter_JSON(t *testing.T) {
	tests := []struct {
		name    string
		chapter scripture.Chapter
		want    string
	}{
		{"number only", scripture.Chapter{Number: 3}, `{"number":3}`},
		{"start verse", scripture.Chapter{Number: 3, StartVerse: ptr(16)}, `{"number":3,"startVerse":16}`},
		{"both verses", scripture.Chapter{Number: 4, StartVerse: ptr(1), EndVerse: ptr(8)}, `{"number":4,"startVerse":1,"endVerse":8}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.chapter)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestReference_String(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"John 3:16", "John 3:16"},
		{"2 Samuel 22-23", "2 Samuel 22; 23"},
		{"Matthew 7:1-6;8:1-23", "Matthew 7:1-6; 8:1-23"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := scripture.MustParse(tt.text).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
