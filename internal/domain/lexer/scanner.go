// Package lexer classifies curly-brace source text into code, literal and
// comment regions and tokenizes the code regions.
package lexer

import (
	"strings"
	"unicode/utf8"

	m "strata.dev/pkg/strata/internal/model"
)

type scanner struct {
	src        string
	dialect    m.Dialect
	regions    []m.Region
	balance    m.Balance
	codeStart  int
	codeDepth  int
	degenerate *m.ScanDegenerate
}

// Scan partitions src into ordered, contiguous regions. It never fails: an
// unterminated literal or comment is closed at the end of input and reported
// through Scan.Degenerate.
func Scan(src string, dialect m.Dialect) m.Scan {
	s := &scanner{src: src, dialect: dialect}
	s.run()

	return m.Scan{Regions: s.regions, Balance: s.balance, Degenerate: s.degenerate}
}

func (s *scanner) run() {
	i := 0
	for i < len(s.src) {
		kind, end, closed, ok := s.literalAt(i)
		if !ok {
			s.count(s.src[i])
			i++

			continue
		}

		s.flushCode(i)
		s.regions = append(s.regions, m.Region{Kind: kind, Start: i, End: end, Depth: s.balance.Braces})

		if !closed && s.degenerate == nil {
			s.degenerate = &m.ScanDegenerate{Kind: kind, Offset: i}
		}

		i = end
		s.codeStart = end
		s.codeDepth = s.balance.Braces
	}

	s.flushCode(len(s.src))
}

func (s *scanner) flushCode(end int) {
	if end > s.codeStart {
		s.regions = append(s.regions, m.Region{Kind: m.RegionCode, Start: s.codeStart, End: end, Depth: s.codeDepth})
	}

	s.codeStart = end
	s.codeDepth = s.balance.Braces
}

func (s *scanner) count(c byte) {
	b := &s.balance

	switch c {
	case '{':
		b.Braces++
	case '}':
		b.Braces--
	case '(':
		b.Parens++
	case ')':
		b.Parens--
	case '[':
		b.Brackets++
	case ']':
		b.Brackets--
	default:
		return
	}

	if b.Braces < 0 || b.Parens < 0 || b.Brackets < 0 {
		b.Underflow = true
	}
}

// literalAt reports whether a literal or comment region opens at offset i and
// where it ends.
func (s *scanner) literalAt(i int) (kind m.RegionKind, end int, closed, ok bool) {
	src, d := s.src, s.dialect
	c := src[i]
	next := byte(0)

	if i+1 < len(src) {
		next = src[i+1]
	}

	switch {
	case c == '/' && next == '/':
		end = strings.IndexByte(src[i:], '\n')
		if end < 0 {
			return m.RegionLineComment, len(src), true, true
		}

		return m.RegionLineComment, i + end, true, true
	case c == '/' && next == '*':
		end = strings.Index(src[i+2:], "*/")
		if end < 0 {
			return m.RegionBlockComment, len(src), false, true
		}

		return m.RegionBlockComment, i + 2 + end + 2, true, true
	case c == '"' && d.TextBlocks && strings.HasPrefix(src[i:], `"""`):
		end, closed = s.quoted(i+3, `"""`, true)

		return m.RegionString, end, closed, true
	case c == '"':
		end, closed = s.quoted(i+1, `"`, true)

		return m.RegionString, end, closed, true
	case c == '@' && next == '"' && d.VerbatimStrings:
		end, closed = s.verbatim(i + 2)

		return m.RegionString, end, closed, true
	case d.RawStringQuote != 0 && c == d.RawStringQuote:
		end, closed = s.quoted(i+1, string(d.RawStringQuote), d.RawStringEscapes)

		return m.RegionString, end, closed, true
	case c == '\'' && d.SingleQuoteStrings:
		end, closed = s.quoted(i+1, "'", true)

		return m.RegionString, end, closed, true
	case c == '\'' && d.CharLiterals:
		if d.Lifetimes && !s.charLiteralAt(i) {
			return 0, 0, false, false
		}

		end, closed = s.quoted(i+1, "'", true)

		return m.RegionChar, end, closed, true
	}

	return 0, 0, false, false
}

// quoted finds the end of a literal whose body starts at from.
func (s *scanner) quoted(from int, closer string, escapes bool) (int, bool) {
	src := s.src

	for j := from; j < len(src); {
		if escapes && src[j] == '\\' {
			j += 2

			continue
		}

		if strings.HasPrefix(src[j:], closer) {
			return j + len(closer), true
		}

		j++
	}

	return len(src), false
}

func (s *scanner) verbatim(from int) (int, bool) {
	src := s.src

	for j := from; j < len(src); j++ {
		if src[j] != '"' {
			continue
		}

		if j+1 < len(src) && src[j+1] == '"' {
			j++

			continue
		}

		return j + 1, true
	}

	return len(src), false
}

// charLiteralAt distinguishes 'x' and '\n' from a lifetime such as 'a.
func (s *scanner) charLiteralAt(i int) bool {
	src := s.src
	if i+1 >= len(src) {
		return false
	}

	if src[i+1] == '\\' {
		return true
	}

	_, size := utf8.DecodeRuneInString(src[i+1:])

	return i+1+size < len(src) && src[i+1+size] == '\''
}

// Concat joins the text of regions in order. Over a full scan it reproduces src.
func Concat(src string, regions []m.Region) string {
	var b strings.Builder

	b.Grow(len(src))

	for _, r := range regions {
		b.WriteString(r.Text(src))
	}

	return b.String()
}

// HeaderEnd returns the offset of the first code "{", ";" or "=" outside any
// parentheses or brackets, or len(src) when there is none. For a unit this is
// where its signature ends.
func HeaderEnd(src string, scan m.Scan) int {
	nesting := 0

	for _, r := range scan.Regions {
		if r.Kind != m.RegionCode {
			continue
		}

		for i := r.Start; i < r.End; i++ {
			switch src[i] {
			case '(', '[':
				nesting++
			case ')', ']':
				nesting--
			case '{', ';':
				if nesting <= 0 {
					return i
				}
			case '=':
				if nesting <= 0 && !isOperatorEquals(src, i) {
					return i
				}
			}
		}
	}

	return len(src)
}

func isOperatorEquals(src string, i int) bool {
	if i+1 < len(src) && (src[i+1] == '=' || src[i+1] == '>') {
		return true
	}

	return i > 0 && strings.IndexByte("=!<>+-*/%&|^:", src[i-1]) >= 0
}
