package lexer

import (
	"sort"
	"unicode"
	"unicode/utf8"

	m "strata.dev/pkg/strata/internal/model"
)

// TokenKind classifies a token.
type TokenKind int

// Token kinds. Literal and comment kinds mirror the region kinds.
const (
	TokenIdent TokenKind = iota
	TokenNumber
	TokenPunct
	TokenString
	TokenChar
	TokenLineComment
	TokenBlockComment
)

// Token is one lexeme of the scanned text.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
	Text  string
}

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool {
	return t.Kind == TokenLineComment || t.Kind == TokenBlockComment
}

// Is reports whether the token is punctuation or an identifier with the given text.
func (t Token) Is(text string) bool {
	return (t.Kind == TokenPunct || t.Kind == TokenIdent) && t.Text == text
}

var operators = func() []string {
	ops := []string{
		">>>=", "<<=", ">>=", ">>>", "...", "<=>", "->", "=>", "::", "++", "--", "&&", "||",
		"==", "!=", "<=", ">=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
		"?.", "?:", "??", ":=", "..", "**", "!!",
	}
	sort.SliceStable(ops, func(i, j int) bool { return len(ops[i]) > len(ops[j]) })

	return ops
}()

// Tokenize splits the code regions of src into identifiers, numbers and
// punctuation, and maps every literal and comment region to one token.
// Whitespace produces no tokens.
func Tokenize(src string, scan m.Scan) []Token {
	tokens := make([]Token, 0, len(src)/3)

	for _, r := range scan.Regions {
		switch r.Kind {
		case m.RegionCode:
			tokens = tokenizeCode(src, r.Start, r.End, tokens)
		case m.RegionString:
			tokens = append(tokens, Token{Kind: TokenString, Start: r.Start, End: r.End, Text: r.Text(src)})
		case m.RegionChar:
			tokens = append(tokens, Token{Kind: TokenChar, Start: r.Start, End: r.End, Text: r.Text(src)})
		case m.RegionLineComment:
			tokens = append(tokens, Token{Kind: TokenLineComment, Start: r.Start, End: r.End, Text: r.Text(src)})
		case m.RegionBlockComment:
			tokens = append(tokens, Token{Kind: TokenBlockComment, Start: r.Start, End: r.End, Text: r.Text(src)})
		}
	}

	return tokens
}

func tokenizeCode(src string, start, end int, tokens []Token) []Token {
	i := start
	for i < end {
		c := src[i]

		switch {
		case IsSpace(c):
			i++
		case IsIdentStart(src, i):
			j := i
			for j < end && IsIdentPart(src, j) {
				_, size := utf8.DecodeRuneInString(src[j:])
				j += size
			}

			tokens = append(tokens, Token{Kind: TokenIdent, Start: i, End: j, Text: src[i:j]})
			i = j
		case c == '\'' && i+1 < end && IsIdentStart(src, i+1):
			// lifetime or label such as 'a
			j := i + 1
			for j < end && IsIdentPart(src, j) {
				_, size := utf8.DecodeRuneInString(src[j:])
				j += size
			}

			tokens = append(tokens, Token{Kind: TokenIdent, Start: i, End: j, Text: src[i:j]})
			i = j
		case isDigit(c) || (c == '.' && i+1 < end && isDigit(src[i+1])):
			j := scanNumber(src, i, end)
			tokens = append(tokens, Token{Kind: TokenNumber, Start: i, End: j, Text: src[i:j]})
			i = j
		default:
			j := i + operatorLen(src[i:end])
			tokens = append(tokens, Token{Kind: TokenPunct, Start: i, End: j, Text: src[i:j]})
			i = j
		}
	}

	return tokens
}

func scanNumber(src string, i, end int) int {
	hex := i+1 < end && src[i] == '0' && (src[i+1] == 'x' || src[i+1] == 'X')
	j := i

	for j < end {
		c := src[j]

		switch {
		case isDigit(c) || isLetter(c) || c == '_' || c == '.':
			if c == '.' && j+1 < end && src[j+1] == '.' {
				return j
			}

			j++
		case (c == '+' || c == '-') && j > i && isExponent(src[j-1], hex):
			j++
		default:
			return j
		}
	}

	return j
}

func isExponent(c byte, hex bool) bool {
	if hex {
		return c == 'p' || c == 'P'
	}

	return c == 'e' || c == 'E'
}

func operatorLen(s string) int {
	for _, op := range operators {
		if len(s) >= len(op) && s[:len(op)] == op {
			return len(op)
		}
	}

	_, size := utf8.DecodeRuneInString(s)

	return size
}

// IsIdentStart reports whether an identifier starts at offset i.
func IsIdentStart(src string, i int) bool {
	c := src[i]
	if c < utf8.RuneSelf {
		return isLetter(c) || c == '_' || c == '$'
	}

	r, _ := utf8.DecodeRuneInString(src[i:])

	return unicode.IsLetter(r)
}

// IsIdentPart reports whether offset i continues an identifier.
func IsIdentPart(src string, i int) bool {
	c := src[i]
	if c < utf8.RuneSelf {
		return isLetter(c) || isDigit(c) || c == '_' || c == '$'
	}

	r, _ := utf8.DecodeRuneInString(src[i:])

	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWordByte reports whether c can be part of an identifier or number.
func IsWordByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '$' || c >= utf8.RuneSelf
}

// IsSpace reports whether c is ASCII whitespace.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
