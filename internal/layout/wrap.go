package layout

import (
	"strings"
	"unicode/utf8"
)

// Line is one wrapped line of a paragraph.
type Line struct {
	Runs  []Run
	Width float64
}

// word is a whitespace-delimited token; it has several runs when bold
// starts or stops inside it.
type word struct {
	runs  []Run
	width float64
}

// Wrap breaks runs into lines no wider than maxWidth. Whitespace collapses
// to single spaces. A word wider than maxWidth is split between characters,
// so text is never dropped.
func Wrap(runs []Run, st Style, maxWidth float64) []Line {
	words := splitWords(runs, st)
	if len(words) == 0 {
		return nil
	}

	space := st.font(false).Width(" ", st.Size)

	var lines []Line
	var cur Line
	flush := func() {
		if len(cur.Runs) > 0 {
			lines = append(lines, cur)
		}
		cur = Line{}
	}

	for _, w := range words {
		if w.width > maxWidth {
			flush()
			pieces := breakWord(w, st, maxWidth)
			for i, p := range pieces {
				cur = Line{Runs: p.runs, Width: p.width}
				if i < len(pieces)-1 {
					flush()
				}
			}
			continue
		}

		if len(cur.Runs) == 0 {
			cur = Line{Runs: append([]Run(nil), w.runs...), Width: w.width}
			continue
		}
		if cur.Width+space+w.width > maxWidth {
			flush()
			cur = Line{Runs: append([]Run(nil), w.runs...), Width: w.width}
			continue
		}
		// The joining space is bold only between two bold runs.
		spaceBold := cur.Runs[len(cur.Runs)-1].Bold && w.runs[0].Bold
		cur.Runs = appendRun(cur.Runs, Run{Text: " ", Bold: spaceBold})
		for _, r := range w.runs {
			cur.Runs = appendRun(cur.Runs, r)
		}
		cur.Width += space + w.width
	}
	flush()

	return lines
}

// splitWords tokenizes runs on whitespace, keeping weight changes that fall
// inside a word.
func splitWords(runs []Run, st Style) []word {
	var words []word
	var cur word
	end := func() {
		if len(cur.runs) > 0 {
			words = append(words, cur)
		}
		cur = word{}
	}

	for _, r := range runs {
		text := r.Text
		if st.Uppercase {
			text = strings.ToUpper(text)
		}
		for len(text) > 0 {
			i := strings.IndexFunc(text, isSpace)
			if i < 0 {
				cur.add(Run{Text: text, Bold: r.Bold}, st)
				break
			}
			if i > 0 {
				cur.add(Run{Text: text[:i], Bold: r.Bold}, st)
			}
			end()
			_, size := utf8.DecodeRuneInString(text[i:])
			text = text[i+size:]
		}
	}
	end()

	return words
}

func (w *word) add(r Run, st Style) {
	w.runs = appendRun(w.runs, r)
	w.width += st.font(r.Bold).Width(r.Text, st.Size)
}

// breakWord splits an overlong word into pieces that each fit maxWidth. A
// piece always holds at least one character.
func breakWord(w word, st Style, maxWidth float64) []word {
	var pieces []word
	var cur word
	for _, r := range w.runs {
		f := st.font(r.Bold)
		for _, ch := range r.Text {
			s := string(ch)
			cw := f.Width(s, st.Size)
			if len(cur.runs) > 0 && cur.width+cw > maxWidth {
				pieces = append(pieces, cur)
				cur = word{}
			}
			cur.runs = appendRun(cur.runs, Run{Text: s, Bold: r.Bold})
			cur.width += cw
		}
	}
	if len(cur.runs) > 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}

// appendRun appends r, merging it into the last run when the weight matches.
func appendRun(runs []Run, r Run) []Run {
	if r.Text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Bold == r.Bold {
		runs[n-1].Text += r.Text
		return runs
	}
	return append(runs, r)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
