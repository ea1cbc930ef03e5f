package model

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect describes the lexical and declaration features of one curly-brace language.
type Dialect struct {
	Name       string
	Extensions []string

	// Modifiers may precede a declaration.
	Modifiers []string
	// TypeKeywords open a type body the locator recurses into.
	TypeKeywords []string
	// DeclKeywords introduce a declaration but are never its name (func, fun, fn).
	DeclKeywords []string
	// ControlKeywords are statement keywords that look like calls (if, while).
	ControlKeywords []string

	// DocBlockPrefix marks a documentation block comment, e.g. "/**".
	DocBlockPrefix string
	// DocLinePrefix marks documentation line comments, e.g. "///".
	DocLinePrefix string

	CharLiterals bool
	Lifetimes    bool
	TextBlocks   bool
	// RawStringQuote delimits raw strings (a backquote in Go and JavaScript).
	RawStringQuote byte
	// RawStringEscapes is set when backslash escapes apply inside raw strings.
	RawStringEscapes bool
	// SingleQuoteStrings makes '...' a string literal instead of a char literal.
	SingleQuoteStrings bool
	// VerbatimStrings enables @"..." literals where "" is the only escape (C#).
	VerbatimStrings bool
	// Interpolation selects how string literals embed expressions.
	Interpolation Interpolation

	// ParamNameFirst is set when a parameter's name precedes its type.
	ParamNameFirst bool
	// ParamModifiers are skipped when reading a parameter name.
	ParamModifiers []string
	// GroupedParams is set when adjacent parameters may share one trailing
	// type and unnamed parameters are plain types (Go).
	GroupedParams bool
	// SeparateMethodNames is set when a name followed by "(" always calls a
	// method and never a variable (Java).
	SeparateMethodNames bool
	// ImplicitPackage names the package whose types need no import ("java.lang").
	ImplicitPackage string
	// TypeNameBefore is set when the type name precedes its keyword (Go "type T struct").
	TypeNameBefore bool
	// GoReceivers is set when methods may carry a receiver list before their name.
	GoReceivers bool
	// ExpressionBodies allows "= expr" bodies ending at a newline (Kotlin).
	ExpressionBodies bool
	// OptionalSemicolons lets a newline end a declaration.
	OptionalSemicolons bool
	// LexicalSemicolons is set when a newline after an operand always ends the
	// statement, whatever follows (Go).
	LexicalSemicolons bool
	// Preprocessor makes a leading "#" line a directive.
	Preprocessor bool
	// BracketAttributes allows [Attr] and [[attr]] before a declaration.
	BracketAttributes bool
	// TaggedTypes is set when struct, union and enum also name return types (C).
	TaggedTypes bool
	// InitializerLists allows member initializers between a constructor's
	// parameters and its body (C++).
	InitializerLists bool
}

// Interpolation is the way a dialect embeds expressions in string literals.
type Interpolation int

// Interpolation styles.
const (
	// InterpolationNone: string literals are opaque.
	InterpolationNone Interpolation = iota
	// InterpolationDollar: "$name" and "${expr}" in every string (Kotlin).
	InterpolationDollar
	// InterpolationTemplate: "${expr}" in raw string templates only (JavaScript).
	InterpolationTemplate
	// InterpolationPrefixed: "{expr}" in strings prefixed with $ (C#).
	InterpolationPrefixed
	// InterpolationFormat: "{name}" captures in format strings (Rust).
	InterpolationFormat
)

// IsModifier reports whether word is a declaration modifier.
func (d Dialect) IsModifier(word string) bool { return contains(d.Modifiers, word) }

// IsTypeKeyword reports whether word opens a type declaration.
func (d Dialect) IsTypeKeyword(word string) bool { return contains(d.TypeKeywords, word) }

// IsDeclKeyword reports whether word introduces a function.
func (d Dialect) IsDeclKeyword(word string) bool { return contains(d.DeclKeywords, word) }

// IsControlKeyword reports whether word is a statement keyword.
func (d Dialect) IsControlKeyword(word string) bool { return contains(d.ControlKeywords, word) }

// IsKeyword reports whether word belongs to any keyword set of the dialect.
func (d Dialect) IsKeyword(word string) bool {
	return d.IsModifier(word) || d.IsTypeKeyword(word) || d.IsDeclKeyword(word) || d.IsControlKeyword(word)
}

// IsDocBlock reports whether the block comment text is a documentation comment.
func (d Dialect) IsDocBlock(text string) bool {
	return d.DocBlockPrefix != "" && strings.HasPrefix(text, d.DocBlockPrefix) && text != "/**/"
}

// IsDocLine reports whether the line comment text is a documentation line.
func (d Dialect) IsDocLine(text string) bool {
	return d.DocLinePrefix != "" && strings.HasPrefix(text, d.DocLinePrefix)
}

// IsParamModifier reports whether word may prefix a parameter name.
func (d Dialect) IsParamModifier(word string) bool { return contains(d.ParamModifiers, word) }

func contains(set []string, word string) bool {
	for _, s := range set {
		if s == word {
			return true
		}
	}

	return false
}

// DefaultDialect is used when neither an override nor the extension selects one.
const DefaultDialect = "java"

func controlKeywords(extra ...string) []string {
	base := []string{
		"if", "else", "for", "while", "do", "switch", "case", "return", "throw", "new",
		"try", "catch", "finally", "sizeof",
	}

	return append(base, extra...)
}

var dialects = map[string]Dialect{
	"java": {
		Name:       "java",
		Extensions: []string{".java"},
		Modifiers: []string{
			"public", "protected", "private", "static", "final", "abstract", "synchronized",
			"native", "strictfp", "transient", "volatile", "default", "sealed",
		},
		TypeKeywords:    []string{"class", "interface", "enum", "record", "@interface"},
		DeclKeywords:    []string{"import", "package"},
		ControlKeywords: controlKeywords("synchronized", "assert", "super", "this"),
		DocBlockPrefix:  "/**",
		CharLiterals:    true,
		TextBlocks:      true,
		ParamModifiers:  []string{"final"},

		SeparateMethodNames: true,
		ImplicitPackage:     "java.lang",
	},
	"kotlin": {
		Name:       "kotlin",
		Extensions: []string{".kt", ".kts"},
		Modifiers: []string{
			"public", "protected", "private", "internal", "open", "final", "abstract",
			"override", "suspend", "inline", "tailrec", "operator", "infix", "external",
			"data", "sealed", "inner", "companion", "lateinit", "const", "actual", "expect",
		},
		TypeKeywords:       []string{"class", "interface", "object", "enum"},
		DeclKeywords:       []string{"fun", "val", "var", "import", "package", "typealias"},
		ControlKeywords:    controlKeywords("when", "super", "this"),
		DocBlockPrefix:     "/**",
		CharLiterals:       true,
		TextBlocks:         true,
		ParamNameFirst:     true,
		ParamModifiers:     []string{"vararg", "noinline", "crossinline", "val", "var"},
		ExpressionBodies:   true,
		OptionalSemicolons: true,
		ImplicitPackage:    "kotlin",
		Interpolation:      InterpolationDollar,
	},
	"csharp": {
		Name:       "csharp",
		Extensions: []string{".cs"},
		Modifiers: []string{
			"public", "protected", "private", "internal", "static", "virtual", "override",
			"abstract", "sealed", "async", "extern", "unsafe", "new", "readonly", "partial",
		},
		TypeKeywords: []string{"class", "interface", "enum", "struct", "record", "namespace"},
		DeclKeywords: []string{"using"},
		ControlKeywords: controlKeywords(
			"foreach", "using", "lock", "fixed", "checked", "unchecked", "nameof", "typeof",
			"base", "this",
		),
		DocBlockPrefix:    "/**",
		DocLinePrefix:     "///",
		CharLiterals:      true,
		VerbatimStrings:   true,
		ParamModifiers:    []string{"ref", "out", "in", "params", "this"},
		Preprocessor:      true,
		BracketAttributes: true,
		Interpolation:     InterpolationPrefixed,
	},
	"c": {
		Name:            "c",
		Extensions:      []string{".c", ".h"},
		Modifiers:       []string{"static", "extern", "inline", "const", "volatile", "register"},
		TypeKeywords:    []string{"struct", "union", "enum"},
		DeclKeywords:    []string{"typedef"},
		ControlKeywords: controlKeywords("_Alignof", "_Static_assert"),
		DocBlockPrefix:  "/**",
		CharLiterals:    true,
		ParamModifiers:  []string{"const"},
		Preprocessor:    true,
		TaggedTypes:     true,
	},
	"cpp": {
		Name:       "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"},
		Modifiers: []string{
			"static", "extern", "inline", "const", "constexpr", "virtual", "explicit",
			"friend", "mutable", "volatile", "public", "private", "protected",
		},
		TypeKeywords:      []string{"class", "struct", "union", "enum", "namespace"},
		DeclKeywords:      []string{"typedef", "template", "using"},
		ControlKeywords:   controlKeywords("decltype", "static_assert", "alignof", "typeid", "delete", "this"),
		DocBlockPrefix:    "/**",
		DocLinePrefix:     "///",
		CharLiterals:      true,
		ParamModifiers:    []string{"const"},
		Preprocessor:      true,
		BracketAttributes: true,
		TaggedTypes:       true,
		InitializerLists:  true,
	},
	"javascript": {
		Name:               "javascript",
		Extensions:         []string{".js", ".mjs", ".cjs", ".jsx"},
		Modifiers:          []string{"static", "async", "export", "default", "get", "set"},
		TypeKeywords:       []string{"class"},
		DeclKeywords:       []string{"function", "const", "let", "var", "import"},
		ControlKeywords:    controlKeywords("typeof", "await", "yield", "super", "this", "void"),
		DocBlockPrefix:     "/**",
		RawStringQuote:     '`',
		RawStringEscapes:   true,
		SingleQuoteStrings: true,
		ParamNameFirst:     true,
		OptionalSemicolons: true,
		Interpolation:      InterpolationTemplate,
	},
	"typescript": {
		Name:       "typescript",
		Extensions: []string{".ts", ".tsx"},
		Modifiers: []string{
			"public", "protected", "private", "static", "readonly", "abstract", "async",
			"export", "default", "declare", "override", "get", "set",
		},
		TypeKeywords:       []string{"class", "interface", "enum", "namespace"},
		DeclKeywords:       []string{"function", "const", "let", "var", "import", "type"},
		ControlKeywords:    controlKeywords("typeof", "await", "yield", "super", "this", "void"),
		DocBlockPrefix:     "/**",
		RawStringQuote:     '`',
		RawStringEscapes:   true,
		SingleQuoteStrings: true,
		ParamNameFirst:     true,
		ParamModifiers:     []string{"public", "protected", "private", "readonly"},
		OptionalSemicolons: true,
		Interpolation:      InterpolationTemplate,
	},
	"go": {
		Name:               "go",
		Extensions:         []string{".go"},
		TypeKeywords:       []string{"struct", "interface"},
		DeclKeywords:       []string{"func", "type", "var", "const", "import", "package"},
		ControlKeywords:    controlKeywords("go", "defer", "select", "range"),
		DocLinePrefix:      "//",
		CharLiterals:       true,
		RawStringQuote:     '`',
		ParamNameFirst:     true,
		GroupedParams:      true,
		TypeNameBefore:     true,
		GoReceivers:        true,
		OptionalSemicolons: true,
		LexicalSemicolons:  true,
	},
	"rust": {
		Name:       "rust",
		Extensions: []string{".rs"},
		Modifiers: []string{
			"pub", "async", "const", "unsafe", "extern", "default",
		},
		TypeKeywords:    []string{"struct", "enum", "trait", "impl", "mod", "union"},
		DeclKeywords:    []string{"fn", "use", "let", "type"},
		ControlKeywords: controlKeywords("match", "loop"),
		DocBlockPrefix:  "/**",
		DocLinePrefix:   "///",
		CharLiterals:    true,
		Lifetimes:       true,
		ParamNameFirst:  true,
		ParamModifiers:  []string{"mut", "ref"},
		Interpolation:   InterpolationFormat,
	},
}

// DialectByName returns the registered dialect with the given name.
func DialectByName(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}

	return d, nil
}

// DialectForExtension returns the dialect registered for ext (with its dot).
func DialectForExtension(ext string) (Dialect, bool) {
	ext = strings.ToLower(ext)

	for _, name := range DialectNames() {
		d := dialects[name]
		if contains(d.Extensions, ext) {
			return d, true
		}
	}

	return Dialect{}, false
}

// DialectNames returns the registered dialect names in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
