// Package perturbations implements the text rewrites behind each perturbation
// axis. A transform receives a scanned snippet and returns the rewritten text.
// Transforms only touch whitespace and identifier tokens in code regions;
// literal contents are never altered.
package perturbations

import (
	"strings"

	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

// Input is the snippet a transform rewrites.
type Input struct {
	Text    string
	Scan    m.Scan
	Dialect m.Dialect
	Symbols m.SymbolTable
	// Name is the unit name, used to find the parameter list.
	Name string
	// Type is the innermost enclosing type name, if any.
	Type string
}

// Transform rewrites one snippet. Applying a transform to its own output
// returns that output unchanged.
type Transform func(in Input) string

// Check vets a snippet before a transform rewrites it. It returns a
// *model.TransformInvariantViolation when the rewrite would break the code.
type Check func(in Input) error

const tabWidth = 4

// gap is the whitespace between two tokens. Prev is nil before the first
// token and Next is nil after the last one.
type gap struct {
	Prev *lexer.Token
	Next *lexer.Token
	Text string
}

func (g gap) edge() bool {
	return g.Prev == nil || g.Next == nil
}

func (g gap) multiline() bool {
	return strings.Contains(g.Text, "\n")
}

func (g gap) afterLineComment() bool {
	return g.Prev != nil && g.Prev.Kind == lexer.TokenLineComment
}

// rewriteGaps rebuilds text from its tokens, replacing the whitespace before
// token i with fn(i, gap). The trailing whitespace is passed with i == len(tokens).
func rewriteGaps(text string, tokens []lexer.Token, fn func(i int, g gap) string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	end := 0

	var prev *lexer.Token

	for i := range tokens {
		tok := &tokens[i]
		b.WriteString(fn(i, gap{Prev: prev, Next: tok, Text: text[end:tok.Start]}))
		b.WriteString(tok.Text)

		prev = tok
		end = tok.End
	}

	b.WriteString(fn(len(tokens), gap{Prev: prev, Text: text[end:]}))

	return b.String()
}

// splitGap cuts whitespace at its first and last newline into the tail of the
// previous line, the line breaks, and the indentation of the next line.
func splitGap(s string) (tail, breaks, indent string) {
	first := strings.IndexByte(s, '\n')
	if first < 0 {
		return s, "", ""
	}

	last := strings.LastIndexByte(s, '\n')

	return s[:first], s[first : last+1], s[last+1:]
}

// trimTail drops trailing blanks from the tail of a line, keeping a carriage return.
func trimTail(tail string) string {
	if strings.HasSuffix(tail, "\r") {
		return strings.TrimRight(tail[:len(tail)-1], " \t\f\v") + "\r"
	}

	return strings.TrimRight(tail, " \t\f\v")
}

// lineEnd returns the line terminator used in s.
func lineEnd(s string) string {
	if strings.Contains(s, "\r\n") {
		return "\r\n"
	}

	return "\n"
}

// columns measures the width of an indentation with tab stops every tabWidth columns.
func columns(indent string) int {
	col := 0

	for i := 0; i < len(indent); i++ {
		if indent[i] == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}

	return col
}

// tabIndent renders an indentation with as many tabs as fit and pads the rest with spaces.
func tabIndent(indent string) string {
	col := columns(indent)

	return strings.Repeat("\t", col/tabWidth) + strings.Repeat(" ", col%tabWidth)
}

// glued reports whether two adjacent tokens must stay adjacent: annotation and
// directive markers, and literal prefixes or suffixes such as r"x" or "x"s.
func glued(g gap) bool {
	if g.Text != "" || g.edge() {
		return false
	}

	if g.Prev.Is("@") || g.Prev.Is("#") {
		return true
	}

	literal := func(t *lexer.Token) bool {
		return t.Kind == lexer.TokenString || t.Kind == lexer.TokenChar
	}

	return (g.Prev.Kind == lexer.TokenIdent && literal(g.Next)) ||
		(literal(g.Prev) && g.Next.Kind == lexer.TokenIdent)
}

// fusible reports whether removing the whitespace between two token texts
// would merge them into a different token.
func fusible(left, right string) bool {
	if left == "" || right == "" {
		return false
	}

	l, r := left[len(left)-1], right[0]
	if lexer.IsWordByte(l) && lexer.IsWordByte(r) {
		return true
	}

	const operators = "+-*/&|<>=!%^:.?"

	return strings.IndexByte(operators, l) >= 0 && strings.IndexByte(operators, r) >= 0
}

// directives marks the tokens that belong to a preprocessor line.
func directives(text string, tokens []lexer.Token, d m.Dialect) []bool {
	marks := make([]bool, len(tokens))
	if !d.Preprocessor {
		return marks
	}

	active := false

	for i, tok := range tokens {
		lineStart := i == 0 || strings.Contains(text[tokens[i-1].End:tok.Start], "\n")
		if lineStart {
			active = tok.Is("#")
		}

		marks[i] = active
	}

	return marks
}

// prevCode returns the index of the last non-comment token before i, or -1.
func prevCode(tokens []lexer.Token, i int) int {
	for k := i - 1; k >= 0; k-- {
		if !tokens[k].IsComment() {
			return k
		}
	}

	return -1
}

// nextCode returns the index of the first non-comment token at or after i, or len(tokens).
func nextCode(tokens []lexer.Token, i int) int {
	for k := i; k < len(tokens); k++ {
		if !tokens[k].IsComment() {
			return k
		}
	}

	return len(tokens)
}

// memberAccess reports whether the token at i is selected from another
// expression (x.name, x::name, or x->name in C-family dialects).
func memberAccess(tokens []lexer.Token, i int, d m.Dialect) bool {
	k := prevCode(tokens, i)
	if k < 0 {
		return false
	}

	t := tokens[k]

	return t.Is(".") || t.Is("?.") || t.Is("::") || (d.Preprocessor && t.Is("->"))
}

// openers maps each closing bracket token to the index of its opener.
func openers(tokens []lexer.Token) map[int]int {
	pairs := map[string]string{")": "(", "]": "[", "}": "{"}
	result := make(map[int]int)

	var stack []int

	for i, tok := range tokens {
		if tok.Kind != lexer.TokenPunct {
			continue
		}

		switch tok.Text {
		case "(", "[", "{":
			stack = append(stack, i)
		case ")", "]", "}":
			if len(stack) > 0 && tokens[stack[len(stack)-1]].Text == pairs[tok.Text] {
				result[i] = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		}
	}

	return result
}

func setOf(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}

	return set
}
