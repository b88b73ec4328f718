package convert_test

import (
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/convert"
)

func TestBlockquotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", "<p>**Be still**</p>", "<p><blockquote>Be still</blockquote></p>"},
		{"non greedy", "**a** and **b**", "<blockquote>a</blockquote> and <blockquote>b</blockquote>"},
		{"unbalanced", "**open only", "**open only"},
		{"empty", "****", "<blockquote></blockquote>"},
		{"no markers", "<p>plain</p>", "<p>plain</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convert.Blockquotes(tt.in); got != tt.want {
				t.Errorf("Blockquotes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnnotateReferences(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantCount int
	}{
		{
			name:      "trimmed inner text",
			in:        "$$ John 3:16 $$",
			want:      `<span class="bible-ref" data-book="John" data-chapters='[{"number":3,"startVerse":16}]'>John 3:16</span>`,
			wantCount: 1,
		},
		{
			name:      "failure keeps untrimmed inner text",
			in:        "a$$ nope! $$b",
			want:      "a nope! b",
			wantCount: 0,
		},
		{
			name:      "duplicate spans each replaced",
			in:        "$$Psalm 1$$ $$Psalm 1$$",
			want:      `<span class="bible-ref" data-book="Psalm" data-chapters='[{"number":1}]'>Psalm 1</span> <span class="bible-ref" data-book="Psalm" data-chapters='[{"number":1}]'>Psalm 1</span>`,
			wantCount: 2,
		},
		{
			name:      "mixed valid and invalid",
			in:        "$$bad$$ $$Jude 1:3$$",
			want:      `bad <span class="bible-ref" data-book="Jude" data-chapters='[{"number":1,"startVerse":3}]'>Jude 1:3</span>`,
			wantCount: 1,
		},
		{
			name:      "no spans",
			in:        "<p>nothing here</p>",
			want:      "<p>nothing here</p>",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, refs := convert.AnnotateReferences(tt.in)
			if got != tt.want {
				t.Errorf("html = %q, want %q", got, tt.want)
			}
			if len(refs) != tt.wantCount {
				t.Errorf("len(refs) = %d, want %d", len(refs), tt.wantCount)
			}
			if refs == nil {
				t.Error("refs should be empty, not nil")
			}
		})
	}
}

func TestAnnotateReferences_Order(t *testing.T) {
	_, refs := convert.AnnotateReferences("$$Genesis 1:1$$ then $$Revelation 22:21$$ then $$Mark 1$$")

	want := []string{"Genesis", "Revelation", "Mark"}
	if len(refs) != len(want) {
		t.Fatalf("len(refs) = %d, want %d", len(refs), len(want))
	}
	for i, book := range want {
		if refs[i].Book != book {
			t.Errorf("refs[%d].Book = %q, want %q", i, refs[i].Book, book)
		}
	}
}

func TestPasses_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>**Selah** $$Psalm 46:10$$ and $$bogus$$</p>",
		"<ul><li>$$1 John 4:1-8$$</li></ul>",
	}

	for _, in := range inputs {
		once, _ := convert.AnnotateReferences(convert.Blockquotes(in))
		twice, refs := convert.AnnotateReferences(convert.Blockquotes(once))

		if twice != once {
			t.Errorf("second pass changed output:\n once: %q\ntwice: %q", once, twice)
		}
		if len(refs) != 0 {
			t.Errorf("second pass found %d references, want 0", len(refs))
		}
	}
}
