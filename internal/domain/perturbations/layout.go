package perturbations

import (
	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

var (
	// operandWords are keywords after which a line break may end a statement.
	operandWords = setOf(
		"return", "break", "continue", "fallthrough", "throw", "yield",
		"this", "super", "self", "null", "nil", "true", "false", "async",
	)
	headerWords       = setOf("if", "while", "for", "foreach", "when", "catch", "switch", "with")
	continuationWords = setOf("catch", "finally", "as", "is", "in", "instanceof", "where", "by")
	// statementPunct may open a new statement on the next line.
	statementPunct = setOf("@", "#", "++", "--", "!")
)

// SingleLine joins the whole unit onto one line. Line comments and
// preprocessor directives keep their line breaks; in dialects without
// mandatory semicolons a break that ended a statement becomes "; ".
func SingleLine(in Input) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)
	directive := directives(in.Text, tokens, in.Dialect)
	st := newStatements(tokens, in.Dialect)

	return rewriteGaps(in.Text, tokens, func(i int, g gap) string {
		switch {
		case g.edge():
			return g.Text
		case g.afterLineComment():
			return lineEnd(g.Text)
		case directive[i] != directive[i-1], directive[i] && g.multiline():
			return lineEnd(g.Text)
		case g.Text == "":
			return ""
		case g.multiline() && st.needsTerminator(i):
			return "; "
		default:
			return " "
		}
	})
}

// TokenPerLine breaks the unit after every whitespace-separated token. In
// dialects without mandatory semicolons no break is added where one could end
// a statement.
func TokenPerLine(in Input) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)
	directive := directives(in.Text, tokens, in.Dialect)
	st := newStatements(tokens, in.Dialect)

	return rewriteGaps(in.Text, tokens, func(i int, g gap) string {
		switch {
		case g.edge():
			return g.Text
		case g.afterLineComment():
			return lineEnd(g.Text)
		case directive[i] && directive[i-1] && !g.multiline():
			return g.Text
		case g.Text == "":
			return ""
		case g.multiline():
			return lineEnd(g.Text)
		case in.Dialect.OptionalSemicolons && st.terminates(prevCode(tokens, i)):
			return " "
		default:
			return "\n"
		}
	})
}

// statements approximates where a line break ends a statement in dialects
// with optional semicolons.
type statements struct {
	tokens  []lexer.Token
	d       m.Dialect
	openers map[int]int
}

func newStatements(tokens []lexer.Token, d m.Dialect) statements {
	return statements{tokens: tokens, d: d, openers: openers(tokens)}
}

// terminates reports whether a line break after token k may end a statement.
func (s statements) terminates(k int) bool {
	if k < 0 {
		return false
	}

	t := s.tokens[k]

	switch t.Kind {
	case lexer.TokenNumber, lexer.TokenString, lexer.TokenChar:
		return true
	case lexer.TokenIdent:
		if k > 0 && s.tokens[k-1].Is("@") {
			return false
		}

		return operandWords[t.Text] || !s.d.IsKeyword(t.Text)
	case lexer.TokenPunct:
		switch t.Text {
		case "]", "}", "++", "--", "!!":
			return true
		case ")":
			return !s.header(k)
		}
	}

	return false
}

// header reports whether the parenthesis closing at k ends a control header
// or annotation arguments.
func (s statements) header(k int) bool {
	open, ok := s.openers[k]
	if !ok {
		return false
	}

	before := prevCode(s.tokens, open)
	if before < 0 {
		return false
	}

	if headerWords[s.tokens[before].Text] {
		return true
	}

	return before > 0 && s.tokens[before].Kind == lexer.TokenIdent && s.tokens[before-1].Is("@")
}

// continues reports whether token i cannot start a statement of its own.
func (s statements) continues(i int) bool {
	if i >= len(s.tokens) {
		return true
	}

	t := s.tokens[i]
	if s.d.LexicalSemicolons {
		return t.Is(")") || t.Is("}")
	}

	switch t.Kind {
	case lexer.TokenPunct:
		return !statementPunct[t.Text]
	case lexer.TokenIdent:
		return continuationWords[t.Text]
	default:
		return false
	}
}

// needsTerminator reports whether joining the line break before token i
// onto one line needs an explicit semicolon. An else continues a braced
// branch but needs the semicolon after a bare statement.
func (s statements) needsTerminator(i int) bool {
	if !s.d.OptionalSemicolons {
		return false
	}

	prev, next := prevCode(s.tokens, i), nextCode(s.tokens, i)
	if !s.terminates(prev) {
		return false
	}

	if next < len(s.tokens) && s.tokens[next].Is("else") && !s.d.LexicalSemicolons {
		return !s.tokens[prev].Is("}")
	}

	return !s.continues(next)
}
