package perturbations

import (
	"strata.dev/pkg/strata/internal/domain/lexer"
)

// TabsFew re-renders the indentation of code lines with tabs.
func TabsFew(in Input) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)

	return rewriteGaps(in.Text, tokens, func(_ int, g gap) string {
		if g.edge() {
			return g.Text
		}

		tail, breaks, indent := splitGap(g.Text)
		if breaks == "" {
			return g.Text
		}

		return tail + breaks + tabIndent(indent)
	})
}

// TabsMany re-renders indentation with tabs and turns every other gap on a
// line into a single tab.
func TabsMany(in Input) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)
	directive := directives(in.Text, tokens, in.Dialect)

	return rewriteGaps(in.Text, tokens, func(i int, g gap) string {
		if g.edge() || glued(g) {
			return g.Text
		}

		tail, breaks, indent := splitGap(g.Text)
		if breaks != "" {
			return trimTail(tail) + breaks + tabIndent(indent)
		}

		if g.Text == "" || (directive[i] && i > 0 && directive[i-1]) {
			return g.Text
		}

		return "\t"
	})
}
