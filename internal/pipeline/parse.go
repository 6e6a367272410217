package pipeline

import "strings"

// BlockKind classifies one markdown line.
type BlockKind int

const (
	BlankSpacer BlockKind = iota
	Heading1
	Heading2
	Heading3
	BulletItem
	Paragraph

	numBlockKinds
)

var blockKindNames = [...]string{
	BlankSpacer: "BlankSpacer",
	Heading1:    "Heading1",
	Heading2:    "Heading2",
	Heading3:    "Heading3",
	BulletItem:  "BulletItem",
	Paragraph:   "Paragraph",
}

var (
	_ [len(blockKindNames) - int(numBlockKinds)]struct{}
	_ [int(numBlockKinds) - len(blockKindNames)]struct{}
)

func (k BlockKind) String() string {
	if k < 0 || k >= numBlockKinds {
		return "Unknown"
	}
	return blockKindNames[k]
}

// BulletPrefix replaces the "- " marker of bullet lines.
const BulletPrefix = "• "

// boldMarker delimits a bold span.
const boldMarker = "**"

// Span is a run of inline text.
type Span struct {
	Text string
	Bold bool
}

// Block is one parsed line.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// Text returns the block's text without markup.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// prefixes are checked longest first so "### " is not taken for "# ".
var prefixes = [...]struct {
	marker string
	kind   BlockKind
}{
	{"### ", Heading3},
	{"## ", Heading2},
	{"# ", Heading1},
	{"- ", BulletItem},
}

// Parse splits markdown into one Block per line. Lines are trimmed; a blank
// line is a BlankSpacer and any line without a recognized prefix is a
// Paragraph. Bold spans are resolved on every line kind, and an unmatched
// "**" is kept as literal text. Parse never fails.
func Parse(markdown string) []Block {
	lines := strings.Split(normalizeLineEndings(markdown), "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, ParseLine(line))
	}
	return blocks
}

// ParseLine classifies a single line.
func ParseLine(line string) Block {
	line = strings.TrimSpace(line)
	if line == "" {
		return Block{Kind: BlankSpacer}
	}

	kind, text := Paragraph, line
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(line, p.marker); ok {
			kind, text = p.kind, rest
			break
		}
	}
	if kind == BulletItem {
		text = BulletPrefix + text
	}

	return Block{Kind: kind, Spans: ParseInline(text)}
}

// ParseInline splits text into plain and bold spans. Markers pair up left to
// right; a final marker without a partner stays in the text. Empty spans
// are dropped, so "****" yields nothing.
func ParseInline(text string) []Span {
	var spans []Span
	add := func(s string, bold bool) {
		if s == "" {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Bold == bold {
			spans[n-1].Text += s
			return
		}
		spans = append(spans, Span{Text: s, Bold: bold})
	}

	rest := text
	for {
		open := strings.Index(rest, boldMarker)
		if open < 0 {
			break
		}
		closeAt := strings.Index(rest[open+len(boldMarker):], boldMarker)
		if closeAt < 0 {
			break
		}
		add(rest[:open], false)
		inner := rest[open+len(boldMarker) : open+len(boldMarker)+closeAt]
		add(inner, true)
		rest = rest[open+2*len(boldMarker)+closeAt:]
	}
	add(rest, false)

	return spans
}

// Title returns the text of the first Heading1 in markdown, or "".
func Title(markdown string) string {
	for _, b := range Parse(markdown) {
		if b.Kind == Heading1 {
			return b.Text()
		}
	}
	return ""
}

// CountLines returns the number of lines Parse would produce.
func CountLines(markdown string) int {
	return strings.Count(normalizeLineEndings(markdown), "\n") + 1
}
