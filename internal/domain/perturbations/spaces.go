package perturbations

import (
	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

var (
	tightBefore = setOf(")", "]", ";", ",", ".")
	tightAfter  = setOf("(", "[", ".")
	// spacedCalls keeps a space before "(" for statement words missing from
	// some dialect keyword sets.
	spacedCalls = setOf(
		"assert", "await", "yield", "typeof", "instanceof", "in", "of", "is", "as",
		"when", "foreach", "lock", "using", "fixed", "match", "synchronized", "and", "or", "not",
	)
)

// SpacesFew rewrites intra-line whitespace into the canonical single-space
// form. Indentation and line breaks are kept; trailing blanks are dropped.
func SpacesFew(in Input) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)
	directive := directives(in.Text, tokens, in.Dialect)

	return rewriteGaps(in.Text, tokens, func(i int, g gap) string {
		if g.edge() || (directive[i] && i > 0 && directive[i-1]) {
			return g.Text
		}

		if tail, breaks, indent := splitGap(g.Text); breaks != "" {
			return trimTail(tail) + breaks + indent
		}

		if g.Text == "" || tight(*g.Prev, *g.Next, in.Dialect) {
			return ""
		}

		return " "
	})
}

// SpacesMany puts exactly one space between every pair of tokens on a line.
func SpacesMany(in Input) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)
	directive := directives(in.Text, tokens, in.Dialect)

	return rewriteGaps(in.Text, tokens, func(i int, g gap) string {
		if g.edge() || (directive[i] && i > 0 && directive[i-1]) || glued(g) {
			return g.Text
		}

		if tail, breaks, indent := splitGap(g.Text); breaks != "" {
			return trimTail(tail) + breaks + indent
		}

		return " "
	})
}

// tight reports whether the canonical form has no space between prev and next.
func tight(prev, next lexer.Token, d m.Dialect) bool {
	switch {
	case next.Kind == lexer.TokenPunct && tightBefore[next.Text]:
		// "1 .x" must not become the number "1."
		return !(next.Text == "." && prev.Kind == lexer.TokenNumber)
	case prev.Kind == lexer.TokenPunct && tightAfter[prev.Text]:
		return true
	case next.Is("(") && prev.Kind == lexer.TokenIdent:
		return !d.IsKeyword(prev.Text) && !spacedCalls[prev.Text]
	default:
		return false
	}
}
