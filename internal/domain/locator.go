package domain

import (
	"log/slog"
	"sort"
	"strings"

	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

// Locator finds method and function declarations in scanned source text.
//
// Detection is heuristic. Type bodies are walked recursively, method bodies
// are never entered, so lambdas and local classes are not reported.
type Locator interface {
	Locate(file m.SourceFile, scan m.Scan) []m.MethodUnit
}

type locator struct{}

// NewLocator returns the token-based Locator.
func NewLocator() Locator {
	return &locator{}
}

func (l *locator) Locate(file m.SourceFile, scan m.Scan) []m.MethodUnit {
	p := newDeclParser(file, scan)
	p.body(0, len(p.toks), nil)
	assignOrdinals(p.units)

	slog.Debug("located units", "source", file.ID, "dialect", file.Dialect.Name, "units", len(p.units))

	return p.units
}

// assignOrdinals numbers units sharing an enclosing type and name in source order.
func assignOrdinals(units []m.MethodUnit) {
	seen := make(map[string]int, len(units))

	for i := range units {
		key := units[i].QualifiedName()
		seen[key]++
		units[i].Ordinal = seen[key]
	}
}

type declParser struct {
	file       m.SourceFile
	src        string
	d          m.Dialect
	toks       []lexer.Token
	lineStarts []int
	units      []m.MethodUnit
}

// declHeader accumulates the annotations and modifiers leading a declaration.
type declHeader struct {
	start       int
	modifiers   []string
	annotations []string
}

func newDeclParser(file m.SourceFile, scan m.Scan) *declParser {
	lineStarts := []int{0}

	for i := 0; i < len(file.Text); i++ {
		if file.Text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &declParser{
		file:       file,
		src:        file.Text,
		d:          file.Dialect,
		toks:       lexer.Tokenize(file.Text, scan),
		lineStarts: lineStarts,
	}
}

func (p *declParser) body(start, end int, enclosing []string) {
	for i := start; i < end; {
		i = p.member(i, end, enclosing)
	}
}

// member parses one declaration starting at token i and returns the index
// after it. It always advances.
func (p *declParser) member(i, end int, enclosing []string) int {
	for i < end && p.toks[i].IsComment() {
		i++
	}

	if i >= end {
		return end
	}

	if p.punct(i, ";") || p.punct(i, "}") || p.punct(i, ",") {
		return i + 1
	}

	h := &declHeader{start: i}

	next, done := p.prefix(i, end, h)
	if done {
		return max(next, i+1)
	}

	return max(p.declaration(next, end, enclosing, h), i+1)
}

// prefix consumes annotations, attributes, modifiers and directives.
func (p *declParser) prefix(i, end int, h *declHeader) (int, bool) {
	for i < end {
		t := p.toks[i]

		switch {
		case t.IsComment():
			i++
		case p.punct(i, "#") && p.d.Preprocessor && i == h.start:
			return p.skipLine(i, end), true
		case p.punct(i, "#") && (p.punct(i+1, "[") || p.punct(i+1, "!")):
			j := i + 1
			if p.punct(j, "!") {
				j++
			}

			close := p.match(j)
			if close < 0 {
				return end, true
			}

			h.annotations = append(h.annotations, p.text(i, close))
			i = close + 1
		case p.punct(i, "[") && p.d.BracketAttributes:
			close := p.match(i)
			if close < 0 {
				return end, true
			}

			h.annotations = append(h.annotations, p.text(i, close))
			i = close + 1
		case p.punct(i, "@") && p.ident(i+1):
			if p.d.IsTypeKeyword("@" + p.toks[i+1].Text) {
				return i, false
			}

			i = p.annotation(i, h)
		case t.Kind == lexer.TokenIdent && p.d.IsModifier(t.Text):
			if p.punct(i+1, ":") {
				// access label such as "public:"
				return i + 2, true
			}

			if p.punct(i+1, "(") {
				close := p.match(i + 1)
				if close < 0 || !p.keywordAt(close+1) {
					return i, false
				}

				h.modifiers = append(h.modifiers, p.text(i, close))
				i = close + 1

				continue
			}

			h.modifiers = append(h.modifiers, t.Text)
			i++
		default:
			return i, false
		}
	}

	return i, false
}

func (p *declParser) annotation(i int, h *declHeader) int {
	j := i + 1
	for p.ident(j) && p.punct(j+1, ".") && p.ident(j+2) {
		j += 2
	}

	last := j

	if p.punct(j+1, "(") {
		if close := p.match(j + 1); close >= 0 {
			last = close
		}
	}

	h.annotations = append(h.annotations, p.text(i, last))

	return last + 1
}

// declaration walks a declaration header after its prefix and dispatches to
// type, method or field handling.
func (p *declParser) declaration(i, end int, enclosing []string, h *declHeader) int {
	var (
		nameIdx    = -1
		groupEnd   = -1
		typeTokens = 0
		sawDecl    = false
		receiver   = ""
	)

	for j := i; j < end; {
		if j > i && p.statementBreak(j) {
			return j
		}

		t := p.toks[j]

		switch {
		case t.IsComment():
			j++
		case t.Kind == lexer.TokenIdent:
			if p.isTypeKeywordAt(j) {
				if next, ok := p.typeDecl(j, end, enclosing, nameIdx); ok {
					return next
				}
			}

			if p.d.IsDeclKeyword(t.Text) {
				sawDecl = true
				nameIdx = -1
				j++

				continue
			}

			if nameIdx >= 0 && !p.punct(nameIdx+1, "::") {
				typeTokens++
			}

			nameIdx = j
			groupEnd = -1
			j++
		case p.punct(j, "@") && p.ident(j+1):
			if p.d.IsTypeKeyword("@" + p.toks[j+1].Text) {
				j++

				continue
			}

			j = p.annotation(j, h)
		case p.punct(j, "<"):
			k := p.skipAngles(j)
			if nameIdx >= 0 && nameIdx == j-1 {
				groupEnd = k - 1
			}

			j = k
		case p.punct(j, "["):
			k := p.match(j)
			if k < 0 {
				return end
			}

			if nameIdx >= 0 && nameIdx == j-1 {
				groupEnd = k
			}

			j = k + 1
		case p.punct(j, "("):
			if p.d.GoReceivers && sawDecl && nameIdx < 0 && receiver == "" && j > 0 && p.d.IsDeclKeyword(p.toks[j-1].Text) {
				close := p.match(j)
				if close < 0 {
					return end
				}

				receiver = p.receiverType(j, close)
				j = close + 1

				continue
			}

			if name, idx, ok := p.nameBefore(j, nameIdx, groupEnd); ok {
				cand := candidate{
					header:     h,
					name:       name,
					nameIdx:    idx,
					open:       j,
					typeTokens: typeTokens,
					sawDecl:    sawDecl,
					enclosing:  p.enclosingFor(enclosing, receiver, idx),
				}

				if next, ok := p.method(cand, end); ok {
					return next
				}
			}

			close := p.match(j)
			if close < 0 {
				return end
			}

			nameIdx = -1
			j = close + 1
		case p.punct(j, "=") || p.punct(j, "=>"):
			return p.skipStatement(j, end)
		case p.punct(j, ";"):
			return j + 1
		case p.punct(j, "{"):
			close := p.match(j)
			if close < 0 {
				return end
			}

			return close + 1
		case p.punct(j, "}"):
			return j + 1
		default:
			j++
		}
	}

	return end
}

type candidate struct {
	header     *declHeader
	name       string
	nameIdx    int
	open       int
	typeTokens int
	sawDecl    bool
	enclosing  []string
}

// nameBefore resolves the declared name for the parameter list opening at j.
func (p *declParser) nameBefore(j, nameIdx, groupEnd int) (string, int, bool) {
	if name, idx, ok := p.operatorName(j); ok {
		return name, idx, true
	}

	if nameIdx < 0 || (nameIdx != j-1 && groupEnd != j-1) {
		return "", -1, false
	}

	name := p.toks[nameIdx].Text
	if p.d.IsControlKeyword(name) || p.d.IsTypeKeyword(name) {
		return "", -1, false
	}

	if p.punct(nameIdx-1, "~") {
		name = "~" + name
	}

	return name, nameIdx, true
}

// operatorName recognises C++ operator overloads such as operator==.
func (p *declParser) operatorName(j int) (string, int, bool) {
	k := j - 1
	for k >= 0 && p.toks[k].Kind == lexer.TokenPunct && !p.punct(k, ")") {
		k--
	}

	if k < 0 || k == j-1 || !p.toks[k].Is("operator") {
		return "", -1, false
	}

	return p.text(k, j-1), k, true
}

func (p *declParser) enclosingFor(enclosing []string, receiver string, nameIdx int) []string {
	out := append([]string(nil), enclosing...)

	switch {
	case receiver != "":
		out = append(out, receiver)
	case p.punct(nameIdx-1, "::") && p.ident(nameIdx-2):
		qualifier := p.toks[nameIdx-2].Text
		if len(out) == 0 || out[len(out)-1] != qualifier {
			out = append(out, qualifier)
		}
	}

	return out
}

// method parses the parameter list, tail and body of a candidate and records
// the unit. It reports false when the candidate is not a declaration.
func (p *declParser) method(c candidate, end int) (int, bool) {
	h := c.header

	if !c.sawDecl && (p.punct(c.nameIdx-1, ".") || p.punct(c.nameIdx-1, "?.") || p.toks[max(c.nameIdx-1, 0)].Is("new")) && c.nameIdx > h.start {
		return 0, false
	}

	close := p.match(c.open)
	if close < 0 {
		return end, true
	}

	if p.punct(close+1, "(") && !strings.HasPrefix(c.name, "operator") {
		return 0, false
	}

	sawColon := false

	for k := close + 1; ; {
		if k >= end || p.punct(k, "}") || (k > close+1 && p.statementBreak(k)) {
			return p.emit(c, close, p.lastCode(k-1), -1, -1), true
		}

		switch {
		case p.toks[k].IsComment():
			k++
		case p.punct(k, "{"):
			if p.d.InitializerLists && sawColon && p.ident(k-1) && (p.punct(k-2, ",") || p.punct(k-2, ":")) {
				init := p.match(k)
				if init < 0 {
					return end, true
				}

				k = init + 1

				continue
			}

			bodyEnd := p.match(k)
			if bodyEnd < 0 {
				return end, true
			}

			return p.emit(c, close, bodyEnd, k, bodyEnd), true
		case p.punct(k, ";"):
			return p.emit(c, close, k, -1, -1), true
		case p.punct(k, "=>"):
			semi := p.statementEnd(k, end)

			return p.emit(c, close, semi, k, semi), true
		case p.punct(k, "="):
			if p.d.ExpressionBodies {
				last := p.statementEnd(k, end)

				return p.emit(c, close, last, k, last), true
			}

			semi := p.statementEnd(k, end)

			return p.emit(c, close, semi, -1, -1), true
		case p.punct(k, "(") || p.punct(k, "["):
			group := p.match(k)
			if group < 0 {
				return end, true
			}

			k = group + 1
		case p.punct(k, "<"):
			k = p.skipAngles(k)
		default:
			if p.punct(k, ":") {
				sawColon = true
			}

			k++
		}
	}
}

// emit records a unit whose last token is last. bodyStart and bodyEnd are
// token indexes of the body, or -1 when the declaration has none.
func (p *declParser) emit(c candidate, paramsClose, last, bodyStart, bodyEnd int) int {
	h := c.header
	next := last + 1

	if bodyStart < 0 && len(c.enclosing) == 0 && c.nameIdx <= h.start {
		return next
	}

	startTok := p.toks[h.start]
	unitStart := startTok.Start

	doc := p.docBefore(h.start)
	if doc != nil {
		unitStart = doc.Span.Start
	}

	sigLast := last

	switch {
	case bodyStart >= 0:
		sigLast = p.lastCode(bodyStart - 1)
	case p.punct(last, ";"):
		sigLast = max(paramsClose, p.lastCode(last-1))
	}

	unit := m.MethodUnit{
		SourceID:    p.file.ID,
		Enclosing:   c.enclosing,
		Name:        c.name,
		Kind:        p.kindOf(c),
		Modifiers:   h.modifiers,
		Annotations: h.annotations,
		Doc:         doc,
		Signature:   m.Span{Start: startTok.Start, End: p.toks[sigLast].End},
		Span:        m.Span{Start: unitStart, End: p.toks[last].End},
	}

	if bodyStart >= 0 {
		unit.Body = &m.Span{Start: p.toks[bodyStart].Start, End: p.toks[bodyEnd].End}
	}

	unit.Line, unit.Indent = p.position(unitStart)
	p.units = append(p.units, unit)

	return next
}

func (p *declParser) kindOf(c candidate) m.UnitKind {
	if c.name == "constructor" {
		return m.UnitConstructor
	}

	if len(c.enclosing) > 0 && c.enclosing[len(c.enclosing)-1] == c.name && c.typeTokens == 0 {
		return m.UnitConstructor
	}

	return m.UnitMethod
}

// docBefore returns the documentation comment directly preceding token i.
func (p *declParser) docBefore(i int) *m.DocComment {
	k := i - 1
	if k < 0 || !p.toks[k].IsComment() {
		return nil
	}

	t := p.toks[k]

	if t.Kind == lexer.TokenBlockComment {
		if !p.d.IsDocBlock(t.Text) {
			return nil
		}

		return &m.DocComment{Span: m.Span{Start: t.Start, End: t.End}, Raw: t.Text}
	}

	if p.d.DocLinePrefix == "" {
		return nil
	}

	first := -1
	for ; k >= 0 && p.toks[k].Kind == lexer.TokenLineComment && p.d.IsDocLine(p.toks[k].Text); k-- {
		if strings.Count(p.src[p.toks[k].End:p.toks[k+1].Start], "\n") > 1 {
			break
		}

		first = k
	}

	if first < 0 {
		return nil
	}

	span := m.Span{Start: p.toks[first].Start, End: p.toks[i-1].End}

	return &m.DocComment{Span: span, Raw: span.Text(p.src)}
}

// typeDecl handles a type declaration whose keyword is at j. It reports
// false when the keyword only names a type (C "struct point make(...)").
func (p *declParser) typeDecl(j, end int, enclosing []string, nameIdx int) (int, bool) {
	keyword := p.toks[j].Text
	isEnum := keyword == "enum"

	k := j + 1
	for k < end && p.ident(k) && p.d.IsTypeKeyword(p.toks[k].Text) {
		isEnum = isEnum || p.toks[k].Text == "enum"
		keyword = p.toks[k].Text
		k++
	}

	name := ""

	if p.d.TypeNameBefore {
		if nameIdx >= 0 {
			name = p.toks[nameIdx].Text
		}
	} else {
		if p.punct(k, "<") {
			k = p.skipAngles(k)
		}

		if p.ident(k) {
			name = p.toks[k].Text
			k++
		}

		if p.d.TaggedTypes {
			kk := k
			for p.punct(kk, "*") || p.punct(kk, "&") {
				kk++
			}

			if p.ident(kk) && p.punct(kk+1, "(") {
				return 0, false
			}
		}
	}

	for k < end {
		if k > j+1 && p.statementBreak(k) {
			return k, true
		}

		switch {
		case p.toks[k].IsComment():
			k++
		case p.punct(k, "(") || p.punct(k, "["):
			close := p.match(k)
			if close < 0 {
				return end, true
			}

			k = close + 1
		case p.punct(k, "<"):
			k = p.skipAngles(k)
		case keyword == "impl" && p.toks[k].Is("for") && p.ident(k+1):
			name = p.toks[k+1].Text
			k += 2
		case p.punct(k, "{"):
			nested := append([]string(nil), enclosing...)
			if name != "" {
				nested = append(nested, name)
			}

			close := p.match(k)
			if close < 0 {
				p.body(k+1, end, nested)

				return end, true
			}

			first := k + 1
			if isEnum {
				first = p.enumMembers(k+1, close)
			}

			slog.Debug("entering type body", "source", p.file.ID, "type", strings.Join(nested, m.EnclosingSeparator))
			p.body(first, close, nested)

			return close + 1, true
		case p.punct(k, ";"):
			return k + 1, true
		case p.punct(k, "}"):
			return k, true
		case p.punct(k, "="):
			return p.skipStatement(k, end), true
		default:
			k++
		}
	}

	return end, true
}

// enumMembers returns the first member index after the enum constant list,
// or close when the enum declares no members.
func (p *declParser) enumMembers(start, close int) int {
	for k := start; k < close; {
		switch {
		case p.punct(k, "(") || p.punct(k, "[") || p.punct(k, "{"):
			group := p.match(k)
			if group < 0 {
				return close
			}

			k = group + 1
		case p.punct(k, ";"):
			return k + 1
		default:
			k++
		}
	}

	return close
}

func (p *declParser) isTypeKeywordAt(j int) bool {
	word := p.toks[j].Text
	if p.punct(j-1, "@") {
		word = "@" + word
	}

	if !p.d.IsTypeKeyword(word) || p.punct(j-1, ".") || p.punct(j-1, "::") {
		return false
	}

	return p.ident(j+1) || p.punct(j+1, "{") || p.punct(j+1, "<")
}

// receiverType returns the type named by a Go receiver list.
func (p *declParser) receiverType(open, close int) string {
	var idents []string

	for k := open + 1; k < close; k++ {
		if p.punct(k, "[") {
			if group := p.match(k); group >= 0 {
				k = group

				continue
			}
		}

		if p.ident(k) {
			idents = append(idents, p.toks[k].Text)
		}
	}

	switch len(idents) {
	case 0:
		return ""
	case 1:
		return idents[0]
	default:
		return idents[1]
	}
}

// skipStatement skips a field or statement from j to its terminator.
func (p *declParser) skipStatement(j, end int) int {
	for k := j + 1; k < end; {
		if p.statementBreak(k) {
			return k
		}

		switch {
		case p.punct(k, "(") || p.punct(k, "[") || p.punct(k, "{"):
			group := p.match(k)
			if group < 0 {
				return end
			}

			k = group + 1
		case p.punct(k, ";"):
			return k + 1
		case p.punct(k, "}"):
			return k
		default:
			k++
		}
	}

	return end
}

// statementEnd returns the index of the ";" ending the statement that starts
// at j. Without one it returns the last token before a newline break or the
// enclosing end, which is how expression bodies end.
func (p *declParser) statementEnd(j, end int) int {
	k := j + 1
	for k < end {
		if p.statementBreak(k) {
			return p.lastCode(k - 1)
		}

		switch {
		case p.punct(k, "(") || p.punct(k, "[") || p.punct(k, "{"):
			group := p.match(k)
			if group < 0 {
				return end - 1
			}

			k = group + 1
		case p.punct(k, ";"):
			return k
		case p.punct(k, "}"):
			return p.lastCode(k - 1)
		default:
			k++
		}
	}

	return p.lastCode(end - 1)
}

// statementBreak reports whether a newline before token k ends the current
// declaration in dialects without mandatory semicolons.
func (p *declParser) statementBreak(k int) bool {
	if !p.d.OptionalSemicolons || k <= 0 || k >= len(p.toks) || p.toks[k].IsComment() {
		return false
	}

	prev := p.lastCode(k - 1)
	if prev < 0 || !strings.Contains(p.src[p.toks[prev].End:p.toks[k].Start], "\n") {
		return false
	}

	if p.toks[prev].Kind == lexer.TokenPunct && continuesAfter[p.toks[prev].Text] {
		return false
	}

	next := p.toks[k]
	if next.Kind == lexer.TokenPunct && continuesBefore[next.Text] {
		return false
	}

	return !(next.Kind == lexer.TokenIdent && continuationWords[next.Text])
}

var continuesAfter = setOf(",", "(", "[", "{", "=", ":", ".", "?.", "->", "=>", "+", "-", "*", "/", "%",
	"&&", "||", "?:", "|", "&", "<", "!", "::", "@")

var continuesBefore = setOf(".", "?.", "{", "=", "=>", "->", ":", "?:", "&&", "||", ")", "]", "}",
	"+", "-", "*", "/", "|", "&", ",", "::")

var continuationWords = setOf("where", "throws", "extends", "implements", "by")

func setOf(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}

	return set
}

// skipLine skips a preprocessor directive, honouring line continuations.
func (p *declParser) skipLine(i, end int) int {
	k := i + 1
	for k < end {
		gap := p.src[p.toks[k-1].End:p.toks[k].Start]
		if strings.Contains(gap, "\n") && !p.punct(k-1, "\\") {
			return k
		}

		k++
	}

	return end
}

// match returns the index of the token closing the group opened at open,
// counting parentheses, brackets and braces together.
func (p *declParser) match(open int) int {
	depth := 0

	for k := open; k < len(p.toks); k++ {
		if p.toks[k].Kind != lexer.TokenPunct {
			continue
		}

		switch p.toks[k].Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return k
			}
		}
	}

	return -1
}

// skipAngles skips a generic argument list opened at j and returns the index
// after it. When the list is not closed before a statement boundary the "<"
// is treated as a plain token.
func (p *declParser) skipAngles(j int) int {
	depth := 0

	for k := j; k < len(p.toks); k++ {
		t := p.toks[k]
		if t.Kind != lexer.TokenPunct {
			continue
		}

		switch t.Text {
		case "<":
			depth++
		case ">":
			depth--
		case ">>":
			depth -= 2
		case ">>>":
			depth -= 3
		case "(", "[":
			if group := p.match(k); group >= 0 {
				k = group
			}
		case ";", "{", "}", "=":
			return j + 1
		}

		if depth <= 0 {
			return k + 1
		}
	}

	return j + 1
}

func (p *declParser) keywordAt(k int) bool {
	if !p.ident(k) {
		return false
	}

	word := p.toks[k].Text

	return p.d.IsModifier(word) || p.d.IsDeclKeyword(word) || p.d.IsTypeKeyword(word)
}

// lastCode returns the last non-comment token index at or before k.
func (p *declParser) lastCode(k int) int {
	for k >= 0 && p.toks[k].IsComment() {
		k--
	}

	return k
}

func (p *declParser) punct(k int, text string) bool {
	return k >= 0 && k < len(p.toks) && p.toks[k].Kind == lexer.TokenPunct && p.toks[k].Text == text
}

func (p *declParser) ident(k int) bool {
	return k >= 0 && k < len(p.toks) && p.toks[k].Kind == lexer.TokenIdent
}

// text returns the source between the start of token i and the end of token j.
func (p *declParser) text(i, j int) string {
	return p.src[p.toks[i].Start:p.toks[j].End]
}

// position returns the 1-based line of offset and the whitespace before it on that line.
func (p *declParser) position(offset int) (int, string) {
	line := sort.Search(len(p.lineStarts), func(i int) bool { return p.lineStarts[i] > offset })
	lead := p.src[p.lineStarts[line-1]:offset]

	if strings.TrimLeft(lead, " \t") != "" {
		return line, ""
	}

	return line, lead
}
