package perturbations

import (
	"strings"

	"strata.dev/pkg/strata/internal/domain/lexer"
)

// NewlinesFew removes blank lines between code lines.
func NewlinesFew(in Input) string {
	return reflowBreaks(in, 1)
}

// NewlinesMany leaves exactly one blank line between consecutive code lines.
func NewlinesMany(in Input) string {
	return reflowBreaks(in, 2)
}

// reflowBreaks rewrites every line break between two tokens as n line terminators.
func reflowBreaks(in Input, n int) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)

	return rewriteGaps(in.Text, tokens, func(_ int, g gap) string {
		if g.edge() {
			return g.Text
		}

		tail, breaks, indent := splitGap(g.Text)
		if breaks == "" {
			return g.Text
		}

		return strings.TrimSuffix(tail, "\r") + strings.Repeat(lineEnd(g.Text), n) + indent
	})
}
