package perturbations

import (
	"strings"

	m "strata.dev/pkg/strata/internal/model"
)

// StripIndentation removes the leading whitespace shared by lines 2..n.
// Lines that start inside a string or char literal are neither measured nor
// changed; blank lines are ignored when measuring.
func StripIndentation(in Input) string {
	starts := indentableLines(in.Text, in.Scan)
	if len(starts) == 0 {
		return in.Text
	}

	prefix := ""
	measured := false

	for _, start := range starts {
		lead := leadingBlanks(in.Text[start:])
		if blankRest(in.Text, start+len(lead)) {
			continue
		}

		if !measured {
			prefix, measured = lead, true

			continue
		}

		prefix = commonPrefix(prefix, lead)
	}

	if prefix == "" {
		return in.Text
	}

	var b strings.Builder
	b.Grow(len(in.Text))

	from := 0

	for _, start := range starts {
		lead := leadingBlanks(in.Text[start:])

		cut := 0

		switch {
		case blankRest(in.Text, start+len(lead)):
			cut = len(lead)
		case strings.HasPrefix(lead, prefix):
			cut = len(prefix)
		}

		b.WriteString(in.Text[from:start])
		from = start + cut
	}

	b.WriteString(in.Text[from:])

	return b.String()
}

// indentableLines returns the start offsets of lines 2..n whose preceding
// line break lies in code or a block comment.
func indentableLines(text string, scan m.Scan) []int {
	var starts []int

	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}

		if r := scan.RegionAt(i); r >= 0 && scan.Regions[r].Kind.IsLiteral() {
			continue
		}

		starts = append(starts, i+1)
	}

	return starts
}

func leadingBlanks(s string) string {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}

	return s[:n]
}

// blankRest reports whether the line continuing at offset i holds only whitespace.
func blankRest(text string, i int) bool {
	return i >= len(text) || text[i] == '\n' || (text[i] == '\r' && (i+1 == len(text) || text[i+1] == '\n'))
}

func commonPrefix(a, b string) string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return a[:n]
}
