package lexer

import (
	"unicode/utf8"

	m "strata.dev/pkg/strata/internal/model"
)

// InterpolatedNames returns the identifiers read by the interpolation holes
// of the string tokens of src. A name selected with a dot ("a.name") is not
// a reference and is left out; everything else inside a hole is kept, so the
// result may hold words that are not identifiers of the enclosing code.
func InterpolatedNames(src string, tokens []Token, d m.Dialect) map[string]bool {
	names := make(map[string]bool)
	if d.Interpolation == m.InterpolationNone {
		return names
	}

	for _, tok := range tokens {
		if tok.Kind != TokenString || tok.Text == "" {
			continue
		}

		for _, hole := range holes(src, tok, d) {
			collectNames(hole, names)
		}
	}

	return names
}

// holes returns the expression text of every interpolation hole in tok.
func holes(src string, tok Token, d m.Dialect) []string {
	text := tok.Text

	switch d.Interpolation {
	case m.InterpolationDollar:
		if len(text) >= 6 && text[:3] == `"""` {
			return dollarHoles(text[3:len(text)-3], true, false)
		}

		return dollarHoles(unquote(text), true, true)
	case m.InterpolationTemplate:
		if text[0] != d.RawStringQuote {
			return nil
		}

		return dollarHoles(unquote(text), false, d.RawStringEscapes)
	case m.InterpolationPrefixed:
		if tok.Start == 0 || src[tok.Start-1] != '$' {
			return nil
		}

		if text[0] == '@' {
			return braceHoles(unquote(text[1:]), false)
		}

		return braceHoles(unquote(text), true)
	case m.InterpolationFormat:
		return braceHoles(unquote(text), true)
	}

	return nil
}

func unquote(text string) string {
	if len(text) < 2 {
		return ""
	}

	return text[1 : len(text)-1]
}

// dollarHoles finds "${expr}" holes and, with bare set, "$name" references.
func dollarHoles(body string, bare, escapes bool) []string {
	var out []string

	for i := 0; i < len(body); i++ {
		c := body[i]

		switch {
		case escapes && c == '\\':
			i++
		case c == '$' && i+1 < len(body) && body[i+1] == '{':
			end := closingBrace(body, i+1)
			out = append(out, body[i+2:end])
			i = end
		case bare && c == '$' && i+1 < len(body) && IsIdentStart(body, i+1) && body[i+1] != '$':
			end := identEnd(body, i+1, false)
			out = append(out, body[i+1:end])
			i = end - 1
		}
	}

	return out
}

// braceHoles finds "{expr}" holes, treating "{{" and "}}" as escapes.
func braceHoles(body string, escapes bool) []string {
	var out []string

	for i := 0; i < len(body); i++ {
		c := body[i]

		switch {
		case escapes && c == '\\':
			i++
		case c == '{' && i+1 < len(body) && body[i+1] == '{':
			i++
		case c == '{':
			end := closingBrace(body, i)
			out = append(out, body[i+1:end])
			i = end
		}
	}

	return out
}

// closingBrace returns the index of the brace closing the one at open, or
// len(s) when it never closes.
func closingBrace(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return len(s)
}

func collectNames(hole string, names map[string]bool) {
	for i := 0; i < len(hole); {
		if !IsIdentStart(hole, i) {
			i++

			continue
		}

		end := identEnd(hole, i, true)
		if !selected(hole, i) {
			names[hole[i:end]] = true
		}

		i = end
	}
}

// selected reports whether the word at i follows a member-access dot.
func selected(s string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if IsSpace(s[j]) {
			continue
		}

		return s[j] == '.' && (j == 0 || s[j-1] != '.')
	}

	return false
}

func identEnd(s string, i int, dollar bool) int {
	for i < len(s) && IsIdentPart(s, i) && (dollar || s[i] != '$') {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	return i
}
