package domain_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

func locate(t *testing.T, lang, text string) (m.SourceFile, []m.MethodUnit) {
	t.Helper()

	d, err := m.DialectByName(lang)
	require.NoError(t, err)

	file := m.SourceFile{ID: "src/sample", Dialect: d, Text: text}

	return file, domain.NewLocator().Locate(file, lexer.Scan(text, d))
}

func qualifiedNames(units []m.MethodUnit) []string {
	names := make([]string, 0, len(units))
	for i := range units {
		names = append(names, units[i].QualifiedName())
	}

	return names
}

func TestLocator_Locate(t *testing.T) {
	tests := []struct {
		name string
		lang string
		src  string
		want []string
	}{
		{
			name: "java members and nested type",
			lang: "java",
			src: `package p;

import java.util.List;

public class Outer {
    private int x;

    public Outer(int x) { this.x = x; }

    @Override
    public String toString() { return "Outer"; }

    static class Inner {
        void run() {}
    }

    abstract void todo();
}
`,
			want: []string{"Outer.Outer", "Outer.toString", "Outer.Inner.run", "Outer.todo"},
		},
		{
			name: "go functions and methods",
			lang: "go",
			src: `package main

type Server struct{}

func (s *Server) Start() error {
	return nil
}

func main() {
	fmt.Println("hi")
}
`,
			want: []string{"Server.Start", "main"},
		},
		{
			name: "c functions after directives",
			lang: "c",
			src: `#include <stdio.h>

static int square(int x) {
    return x * x;
}

int main(void) {
    printf("%d\n", square(3));
    return 0;
}
`,
			want: []string{"square", "main"},
		},
		{
			name: "javascript function and class",
			lang: "javascript",
			src: "function greet(name) {\n  return `hi ${name}`;\n}\n\nclass Greeter {\n  constructor(prefix) { this.prefix = prefix; }\n  greet(name) { return this.prefix + name; }\n}\n",
			want: []string{"greet", "Greeter.constructor", "Greeter.greet"},
		},
		{
			name: "kotlin block and expression bodies",
			lang: "kotlin",
			src:  "class Repo {\n    fun find(id: Int): String {\n        return \"x\"\n    }\n\n    fun size() = 3\n}\n",
			want: []string{"Repo.find", "Repo.size"},
		},
		{
			name: "braces inside literals and comments",
			lang: "java",
			src:  "class Q {\n    String f() { return \"}\"; } // {\n    /* } */\n    void g() {}\n}\n",
			want: []string{"Q.f", "Q.g"},
		},
		{
			name: "calls inside bodies are not units",
			lang: "java",
			src:  "class R {\n    void f() {\n        if (ok()) { run(); }\n        new Thread(() -> go()).start();\n    }\n}\n",
			want: []string{"R.f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, units := locate(t, tt.lang, tt.src)

			if diff := cmp.Diff(tt.want, qualifiedNames(units)); diff != "" {
				t.Errorf("units mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocator_Locate_UnitDetails(t *testing.T) {
	src := `class Shape {
    /**
     * Area.
     */
    public double area() { return 0; }

    public Shape() {}

    double scale(double f) { return f; }
    double scale(int f) { return f; }
}
`
	file, units := locate(t, "java", src)
	require.Len(t, units, 4)

	area := units[0]
	require.NotNil(t, area.Doc)
	assert.Equal(t, "Area.", area.Doc.Text())
	assert.Equal(t, []string{"public"}, area.Modifiers)
	assert.Equal(t, m.UnitMethod, area.Kind)
	assert.Equal(t, 2, area.Line)
	assert.Equal(t, "    ", area.Indent)
	assert.Equal(t, "public double area()", area.Signature.Text(file.Text))
	require.NotNil(t, area.Body)
	assert.Equal(t, "{ return 0; }", area.Body.Text(file.Text))

	assert.Equal(t, m.UnitConstructor, units[1].Kind)

	assert.Equal(t, "scale", units[2].Name)
	assert.Equal(t, 1, units[2].Ordinal)
	assert.Equal(t, 2, units[3].Ordinal)
	assert.Nil(t, units[2].Doc)

	for i := range units {
		assert.Equal(t, "src/sample", units[i].SourceID)
		assert.True(t, strings.HasSuffix(units[i].Span.Text(file.Text), "}"), units[i].Name)
	}
}

func TestLocator_Locate_Empty(t *testing.T) {
	_, units := locate(t, "java", "")
	assert.Empty(t, units)

	_, units = locate(t, "java", "// just a comment\n")
	assert.Empty(t, units)
}

func TestExtractor(t *testing.T) {
	src := "class A {\n    /** Doc. */\n    int f() { return 1; }\n\n    int g() { return 2; }\n}\n"
	file, units := locate(t, "java", src)
	require.Len(t, units, 2)

	t.Run("include doc", func(t *testing.T) {
		e := domain.NewExtractor(domain.ExtractOptions{IncludeDoc: true})
		snippet := e.Extract(file, &units[0])

		assert.Equal(t, "/** Doc. */\n    int f() { return 1; }", snippet.Text)
		assert.Equal(t, "int f()", snippet.SignatureText)
		assert.Equal(t, units[0].Span.Start, snippet.Offset)
		assert.Equal(t, file.Dialect.Name, snippet.Dialect.Name)
	})

	t.Run("exclude doc", func(t *testing.T) {
		e := domain.NewExtractor(domain.ExtractOptions{})
		snippet := e.Extract(file, &units[0])

		assert.Equal(t, "int f() { return 1; }", snippet.Text)
		assert.Equal(t, units[0].Signature.Start, snippet.Offset)
	})

	t.Run("require doc", func(t *testing.T) {
		e := domain.NewExtractor(domain.ExtractOptions{IncludeDoc: true, RequireDoc: true})

		assert.True(t, e.Accept(&units[0]))
		assert.False(t, e.Accept(&units[1]))
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, domain.DefaultExtractOptions().Validate())
		require.NoError(t, domain.ExtractOptions{IncludeDoc: true, RequireDoc: true}.Validate())
		require.ErrorIs(t, domain.ExtractOptions{RequireDoc: true}.Validate(), m.ErrInvalidExtractOptions)
	})

	t.Run("slice is lossless", func(t *testing.T) {
		e := domain.NewExtractor(domain.DefaultExtractOptions())

		for i := range units {
			snippet := e.Extract(file, &units[i])
			assert.Equal(t, file.Text[snippet.Offset:snippet.Offset+len(snippet.Text)], snippet.Text)
		}
	})
}
