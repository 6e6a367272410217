package pipeline

import (
	"reflect"
	"testing"
)

func TestParse_ThreeBlocks(t *testing.T) {
	t.Parallel()

	got := Parse("# Title\n- item one\n**bold** text")
	want := []Block{
		{Kind: Heading1, Spans: []Span{{Text: "Title"}}},
		{Kind: BulletItem, Spans: []Span{{Text: "• item one"}}},
		{Kind: Paragraph, Spans: []Span{{Text: "bold", Bold: true}, {Text: " text"}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		kind BlockKind
		text string
	}{
		{name: "blank", line: "", kind: BlankSpacer},
		{name: "whitespace only", line: " \t ", kind: BlankSpacer},
		{name: "heading 1", line: "# Executive Summary", kind: Heading1, text: "Executive Summary"},
		{name: "heading 2", line: "## Scope", kind: Heading2, text: "Scope"},
		{name: "heading 3", line: "### Phase 1", kind: Heading3, text: "Phase 1"},
		{name: "heading 4 is a paragraph", line: "#### Deep", kind: Paragraph, text: "#### Deep"},
		{name: "hash without space", line: "#tag", kind: Paragraph, text: "#tag"},
		{name: "bullet", line: "- Budget", kind: BulletItem, text: "• Budget"},
		{name: "indented bullet", line: "   - Nested", kind: BulletItem, text: "• Nested"},
		{name: "dash without space", line: "-5 degrees", kind: Paragraph, text: "-5 degrees"},
		{name: "numbered list is a paragraph", line: "1. **Data Ingestion**", kind: Paragraph, text: "1. Data Ingestion"},
		{name: "trimmed paragraph", line: "  plain text  ", kind: Paragraph, text: "plain text"},
		{name: "bold heading", line: "## **Bold** Heading", kind: Heading2, text: "Bold Heading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseLine(tt.line)
			if got.Kind != tt.kind {
				t.Errorf("ParseLine(%q).Kind = %v, want %v", tt.line, got.Kind, tt.kind)
			}
			if got.Text() != tt.text {
				t.Errorf("ParseLine(%q).Text() = %q, want %q", tt.line, got.Text(), tt.text)
			}
		})
	}
}

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{name: "plain", in: "hello", want: []Span{{Text: "hello"}}},
		{name: "empty", in: "", want: nil},
		{name: "single bold", in: "**bold**", want: []Span{{Text: "bold", Bold: true}}},
		{name: "bold in middle", in: "a **b** c", want: []Span{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}}},
		{name: "two bold spans", in: "**a** and **b**", want: []Span{{Text: "a", Bold: true}, {Text: " and "}, {Text: "b", Bold: true}}},
		{name: "unmatched marker stays literal", in: "price **20", want: []Span{{Text: "price **20"}}},
		{name: "third marker unmatched", in: "**a** **b", want: []Span{{Text: "a", Bold: true}, {Text: " **b"}}},
		{name: "empty bold dropped", in: "x****y", want: []Span{{Text: "xy"}}},
		{name: "label and value", in: "**Estimated Budget:** $20k", want: []Span{{Text: "Estimated Budget:", Bold: true}, {Text: " $20k"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseInline(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_LineEndings(t *testing.T) {
	t.Parallel()

	got := Parse("# A\r\n\r\nb\rc")
	kinds := make([]BlockKind, len(got))
	for i, b := range got {
		kinds[i] = b.Kind
	}
	want := []BlockKind{Heading1, BlankSpacer, Paragraph, Paragraph}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	if got := Title("\n## Sub\n# **Main** Title\n# Second"); got != "Main Title" {
		t.Errorf("Title() = %q, want %q", got, "Main Title")
	}
	if got := Title("no heading"); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
}

func TestCountLines(t *testing.T) {
	t.Parallel()

	tests := map[string]int{"": 1, "a": 1, "a\nb": 2, "a\r\nb\r\n": 3}
	for in, want := range tests {
		if got := CountLines(in); got != want {
			t.Errorf("CountLines(%q) = %d, want %d", in, got, want)
		}
		if got := len(Parse(in)); got != want {
			t.Errorf("len(Parse(%q)) = %d, want %d", in, got, want)
		}
	}
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	if Heading3.String() != "Heading3" || BlockKind(42).String() != "Unknown" {
		t.Error("unexpected BlockKind names")
	}
}
