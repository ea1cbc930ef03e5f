package model

import (
	"strings"
)

// UnitKind distinguishes ordinary methods from constructors.
type UnitKind string

const (
	// UnitMethod is a method or free function.
	UnitMethod UnitKind = "method"
	// UnitConstructor is a declaration named after its enclosing type with no return type.
	UnitConstructor UnitKind = "constructor"
)

// EnclosingSeparator joins nested type names.
const EnclosingSeparator = "."

// DocComment is the documentation comment attached to a unit.
type DocComment struct {
	Span Span
	Raw  string
}

// Text returns the comment content with markers and leading asterisks removed.
func (d DocComment) Text() string {
	raw := strings.TrimSpace(d.Raw)

	if strings.HasPrefix(raw, "/*") {
		raw = strings.TrimPrefix(raw, "/*")
		raw = strings.TrimLeft(raw, "*")
		raw = strings.TrimSuffix(raw, "*/")
	}

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "/")
		line = strings.TrimPrefix(line, "*")
		out = append(out, strings.TrimSpace(line))
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

// MethodUnit is one located declaration. It belongs to the SourceFile it was
// located in and is never mutated after creation.
type MethodUnit struct {
	SourceID    string
	Enclosing   []string
	Name        string
	Kind        UnitKind
	Modifiers   []string
	Annotations []string
	Doc         *DocComment
	Signature   Span
	Body        *Span
	Span        Span
	Ordinal     int
	Line        int
	Indent      string
}

// EnclosingType returns the dot-joined nesting path.
func (u *MethodUnit) EnclosingType() string {
	return strings.Join(u.Enclosing, EnclosingSeparator)
}

// QualifiedName returns the enclosing path plus the unit name.
func (u *MethodUnit) QualifiedName() string {
	if len(u.Enclosing) == 0 {
		return u.Name
	}

	return u.EnclosingType() + EnclosingSeparator + u.Name
}

// HasBody reports whether the declaration has a body.
func (u *MethodUnit) HasBody() bool {
	return u.Body != nil
}

// HasDoc reports whether a documentation comment is attached.
func (u *MethodUnit) HasDoc() bool {
	return u.Doc != nil
}

// HasModifier reports whether mod appears in the modifier list.
func (u *MethodUnit) HasModifier(mod string) bool {
	for _, m := range u.Modifiers {
		if m == mod {
			return true
		}
	}

	return false
}

// Snippet is the lossless extraction of a unit.
type Snippet struct {
	Unit          *MethodUnit
	Dialect       Dialect
	Text          string
	SignatureText string
	// Offset is the byte offset of Text within the source file.
	Offset int
}
