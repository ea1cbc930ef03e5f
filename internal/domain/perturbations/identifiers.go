package perturbations

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

// unnamed parameter names that are never renamed.
var fixedParams = setOf("_", "self", "this")

// primitives never name a parameter in type-first dialects.
var primitives = setOf(
	"void", "int", "long", "short", "char", "float", "double", "bool", "boolean", "byte",
	"signed", "unsigned", "const", "volatile", "auto", "string", "object", "decimal",
)

// RenameFew renames the unit's parameters, using the symbol table where it
// has an entry and argN otherwise.
func RenameFew(in Input) string {
	return rename(in, false)
}

// RenameMany renames the parameters and every identifier the symbol table lists.
func RenameMany(in Input) string {
	return rename(in, true)
}

// CheckRenameFew refuses a RenameFew step that would leave a parameter
// read from an interpolated string under its old name.
func CheckRenameFew(in Input) error {
	return checkRename(in, false)
}

// CheckRenameMany is CheckRenameFew for RenameMany, which also covers the
// identifiers of the symbol table.
func CheckRenameMany(in Input) error {
	return checkRename(in, true)
}

func checkRename(in Input, all bool) error {
	if in.Dialect.Interpolation == m.InterpolationNone {
		return nil
	}

	tokens := lexer.Tokenize(in.Text, in.Scan)

	interpolated := lexer.InterpolatedNames(in.Text, tokens, in.Dialect)
	if len(interpolated) == 0 {
		return nil
	}

	_, params := parameters(tokens, in.Dialect, in.Name)
	renamed := paramTargets(tokens, params, in.Symbols.Rename)

	var stale []string

	for name := range interpolated {
		target, ok := renamed[name]
		if !ok && all {
			target, ok = in.Symbols.Rename[name]
		}

		if ok && target != name {
			stale = append(stale, name)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	sort.Strings(stale)

	return &m.TransformInvariantViolation{
		Reason: fmt.Sprintf("%s read inside an interpolated string", strings.Join(stale, ", ")),
	}
}

func rename(in Input, all bool) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)
	open, params := parameters(tokens, in.Dialect, in.Name)

	targets := paramTargets(tokens, params, in.Symbols.Rename)

	declared := make(map[int]bool, len(params))
	for _, p := range params {
		declared[p] = true
	}

	var b strings.Builder
	b.Grow(len(in.Text) + len(in.Text)/8)

	end := 0

	for i, tok := range tokens {
		if tok.Kind != lexer.TokenIdent {
			continue
		}

		replacement, ok := "", false

		switch {
		case declared[i]:
			replacement, ok = targets[tok.Text]
		case memberAccess(tokens, i, in.Dialect):
		case open >= 0 && i > open && targets[tok.Text] != "" && !methodCall(tokens, i, in.Dialect):
			replacement, ok = targets[tok.Text], true
		case all:
			replacement, ok = in.Symbols.Rename[tok.Text]
		}

		if !ok || replacement == tok.Text {
			continue
		}

		b.WriteString(in.Text[end:tok.Start])
		b.WriteString(replacement)
		end = tok.End
	}

	b.WriteString(in.Text[end:])

	return b.String()
}

// paramTargets decides the new name of every parameter. A generated name is
// accepted when no other identifier uses it; otherwise underscores are
// appended until it is free. Names taken from the table are used as given.
func paramTargets(tokens []lexer.Token, params []int, table map[string]string) map[string]string {
	current := make(map[string]bool, len(params))
	for _, p := range params {
		current[tokens[p].Text] = true
	}

	used := make(map[string]bool)

	for _, tok := range tokens {
		if tok.Kind == lexer.TokenIdent && !current[tok.Text] {
			used[tok.Text] = true
		}
	}

	values := make(map[string]bool, len(table))

	for key, value := range table {
		used[key] = true
		used[value] = true
		values[value] = true
	}

	targets := make(map[string]string, len(params))

	for n, p := range params {
		name := tokens[p].Text
		if _, done := targets[name]; done {
			continue
		}

		candidate, fixed := paramTarget(name, n, table, values)
		for !fixed && candidate != name && used[candidate] {
			candidate += "_"
		}

		used[candidate] = true
		targets[name] = candidate
	}

	return targets
}

// paramTarget proposes the name of parameter n and reports whether it comes
// from the table. Table values and generated names map back to themselves so
// a second pass keeps them.
func paramTarget(name string, n int, table map[string]string, values map[string]bool) (string, bool) {
	if value, ok := table[name]; ok {
		return value, true
	}

	base := strings.TrimRight(name, "_")
	if values[base] {
		return base, true
	}

	generated := "arg" + strconv.Itoa(n)
	if base == generated {
		return base, false
	}

	return generated, false
}

// methodCall reports whether the identifier at i can only name a method.
func methodCall(tokens []lexer.Token, i int, d m.Dialect) bool {
	if !d.SeparateMethodNames {
		return false
	}

	k := nextCode(tokens, i+1)

	return k < len(tokens) && tokens[k].Is("(")
}

// parameters locates the parameter list of the unit named name and returns
// the index of its "(" token and the token indices of the parameter names.
// open is -1 when no list is found.
func parameters(tokens []lexer.Token, d m.Dialect, name string) (int, []int) {
	open := paramList(tokens, name)
	if open < 0 {
		return -1, nil
	}

	var (
		segments [][]int
		current  []int
		depth    int
		angles   int
		defaults bool
	)

	for i := open + 1; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.IsComment() {
			continue
		}

		if depth == 0 && angles == 0 && (tok.Is(")") || tok.Is(",")) {
			segments = append(segments, current)
			current, defaults = nil, false

			if tok.Is(")") {
				break
			}

			continue
		}

		switch {
		case tok.Is("(") || tok.Is("[") || tok.Is("{"):
			depth++
		case tok.Is(")") || tok.Is("]") || tok.Is("}"):
			depth--
		case depth == 0 && tok.Is("="):
			defaults = true
		case !defaults && tok.Is("<"):
			angles++
		case !defaults && angles > 0 && (tok.Is(">") || tok.Is(">>") || tok.Is(">>>")):
			angles -= len(tok.Text)
			if angles < 0 {
				angles = 0
			}
		}

		if !defaults {
			current = append(current, i)
		}
	}

	var names []int

	if d.GroupedParams && !namedGroups(tokens, segments) {
		return open, nil
	}

	for _, seg := range segments {
		if k := paramName(tokens, seg, d); k >= 0 {
			names = append(names, k)
		}
	}

	return open, names
}

// paramList finds the "(" opening the parameters of name, falling back to the
// first "(" that follows an identifier.
func paramList(tokens []lexer.Token, name string) int {
	fallback, depth := -1, 0

	for i, tok := range tokens {
		switch {
		case depth == 0 && (tok.Is("{") || tok.Is(";")):
			return fallback
		case tok.Is(")") || tok.Is("]") || tok.Is("}"):
			depth--

			continue
		case tok.Is("[") || tok.Is("{"):
			depth++

			continue
		case !tok.Is("("):
			continue
		}

		depth++
		if depth > 1 {
			continue
		}

		k := skipTypeArgs(tokens, prevCode(tokens, i))
		if k < 0 || tokens[k].Kind != lexer.TokenIdent {
			continue
		}

		if tokens[k].Text == name || "~"+tokens[k].Text == name {
			return i
		}

		if annotation := k > 0 && tokens[k-1].Is("@"); fallback < 0 && !annotation {
			fallback = i
		}
	}

	return fallback
}

// skipTypeArgs steps back over a generic argument list ending at k.
func skipTypeArgs(tokens []lexer.Token, k int) int {
	if k < 0 || !(tokens[k].Is(">") || tokens[k].Is(">>")) {
		return k
	}

	depth := 0

	for ; k >= 0; k-- {
		switch {
		case tokens[k].Is(">"), tokens[k].Is(">>"):
			depth += len(tokens[k].Text)
		case tokens[k].Is("<"):
			depth--
			if depth == 0 {
				return prevCode(tokens, k)
			}
		case tokens[k].Is("(") || tokens[k].Is(";") || tokens[k].Is("{"):
			return -1
		}
	}

	return -1
}

// namedGroups reports whether a grouped parameter list names its
// parameters ("a, b int") rather than listing bare types ("int, string").
func namedGroups(tokens []lexer.Token, segments [][]int) bool {
	for _, seg := range segments {
		if len(seg) > 1 && tokens[seg[0]].Kind == lexer.TokenIdent && !tokens[seg[1]].Is(".") {
			return true
		}
	}

	return false
}

// paramName returns the token index of the name in one parameter, or -1.
func paramName(tokens []lexer.Token, seg []int, d m.Dialect) int {
	seg = skipParamAttributes(tokens, seg)
	if len(seg) == 0 {
		return -1
	}

	if d.ParamNameFirst {
		n := 0
		for n < len(seg) && namePrefix(tokens[seg[n]], d) {
			n++
		}

		if n == len(seg) || tokens[seg[n]].Kind != lexer.TokenIdent || fixedParams[tokens[seg[n]].Text] {
			return -1
		}

		return seg[n]
	}

	idents, last, depth := 0, -1, 0

	for _, k := range seg {
		tok := tokens[k]

		switch {
		case tok.Is("(") || tok.Is("[") || tok.Is("<"):
			depth++
		case tok.Is(")") || tok.Is("]"):
			depth--
		case tok.Is(">") || tok.Is(">>") || tok.Is(">>>"):
			depth -= len(tok.Text)
		case depth == 0 && tok.Kind == lexer.TokenIdent && !d.IsParamModifier(tok.Text):
			idents++
			last = k
		}
	}

	if idents < 2 || last < 0 {
		return -1
	}

	name := tokens[last].Text
	if fixedParams[name] || primitives[name] || memberAccess(tokens, last, d) {
		return -1
	}

	if k := prevCode(tokens, last); k >= 0 && d.IsTypeKeyword(tokens[k].Text) {
		return -1
	}

	return last
}

// namePrefix reports whether tok may precede a parameter name: modifiers,
// lifetimes, and reference or spread markers.
func namePrefix(tok lexer.Token, d m.Dialect) bool {
	if tok.Kind == lexer.TokenIdent {
		return d.IsParamModifier(tok.Text) || strings.HasPrefix(tok.Text, "'")
	}

	return tok.Is("&") || tok.Is("*") || tok.Is("...")
}

// skipParamAttributes drops leading annotations and attributes.
func skipParamAttributes(tokens []lexer.Token, seg []int) []int {
	for len(seg) > 0 {
		tok := tokens[seg[0]]

		switch {
		case tok.Is("@") && len(seg) > 1:
			n := 2
			for n+1 < len(seg) && tokens[seg[n]].Is(".") {
				n += 2
			}

			if n < len(seg) && tokens[seg[n]].Is("(") {
				n = skipGroup(tokens, seg, n)
			}

			seg = seg[min(n, len(seg)):]
		case tok.Is("#") || tok.Is("["):
			start := 0
			if tok.Is("#") {
				start = 1
			}

			if start >= len(seg) || !tokens[seg[start]].Is("[") {
				return seg
			}

			seg = seg[min(skipGroup(tokens, seg, start), len(seg)):]
		default:
			return seg
		}
	}

	return seg
}

// skipGroup returns the position after the bracket group opening at seg[n].
func skipGroup(tokens []lexer.Token, seg []int, n int) int {
	depth := 0

	for ; n < len(seg); n++ {
		switch t := tokens[seg[n]]; {
		case t.Is("(") || t.Is("[") || t.Is("{"):
			depth++
		case t.Is(")") || t.Is("]") || t.Is("}"):
			depth--
			if depth == 0 {
				return n + 1
			}
		}
	}

	return n
}

// QualifyFew expands the short type names of the signature.
func QualifyFew(in Input) string {
	return qualify(in, lexer.HeaderEnd(in.Text, in.Scan))
}

// QualifyMany expands the short type names of the whole unit.
func QualifyMany(in Input) string {
	return qualify(in, len(in.Text))
}

func qualify(in Input, limit int) string {
	table := qualifyTable(in)
	if len(table) == 0 {
		return in.Text
	}

	tokens := lexer.Tokenize(in.Text, in.Scan)

	var b strings.Builder
	b.Grow(len(in.Text) + len(in.Text)/4)

	end := 0

	for i, tok := range tokens {
		if tok.Start >= limit {
			break
		}

		if tok.Kind != lexer.TokenIdent || tok.Text == in.Name || tok.Text == in.Type {
			continue
		}

		qualified, ok := table[tok.Text]
		if !ok || memberAccess(tokens, i, in.Dialect) {
			continue
		}

		b.WriteString(in.Text[end:tok.Start])
		b.WriteString(qualified)
		end = tok.End
	}

	b.WriteString(in.Text[end:])

	return b.String()
}

func rootSegment(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}

	return name
}
