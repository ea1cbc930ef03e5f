package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	"strata.dev/pkg/strata/internal/domain/lexer"
	"strata.dev/pkg/strata/internal/domain/perturbations"
	m "strata.dev/pkg/strata/internal/model"
)

const indentedJava = `class Box {
    /** Returns the total. */
    public int total(int count, String label) {
        // debug
        return count  +  label.length();
    }
}
`

// extractFirst locates the first unit of text and extracts it with the default options.
func extractFirst(t *testing.T, lang, id, text string) m.Snippet {
	t.Helper()

	d, err := m.DialectByName(lang)
	require.NoError(t, err)

	file := m.SourceFile{ID: id, Dialect: d, Text: text}
	units := domain.NewLocator().Locate(file, lexer.Scan(text, d))
	require.NotEmpty(t, units)

	return domain.NewExtractor(domain.DefaultExtractOptions()).Extract(file, &units[0])
}

func spec(t *testing.T, axis, intensity string) m.AxisSpec {
	t.Helper()

	s, err := m.ParseAxisSpec(axis, intensity)
	require.NoError(t, err)

	return s
}

func TestEngine_Perturb(t *testing.T) {
	snippet := extractFirst(t, "java", "Box.java", indentedJava)
	strip := m.Stratum{ID: 1, Base: []m.AxisSpec{{Axis: m.AxisIndentation, Intensity: m.IntensityStrip}}}

	tests := []struct {
		name      string
		stratum   m.Stratum
		axis      m.AxisSpec
		want      string
		unchanged bool
	}{
		{
			name:    "none without base is the original",
			stratum: m.Stratum{ID: 0},
			axis:    m.NoneSpec,
			want:    "/** Returns the total. */\n    public int total(int count, String label) {\n        // debug\n        return count  +  label.length();\n    }",
		},
		{
			name:    "base strips indentation",
			stratum: strip,
			axis:    m.NoneSpec,
			want:    "/** Returns the total. */\npublic int total(int count, String label) {\n    // debug\n    return count  +  label.length();\n}",
		},
		{
			name:    "spaces on top of the base",
			stratum: strip,
			axis:    spec(t, "spaces", "few"),
			want:    "/** Returns the total. */\npublic int total(int count, String label) {\n    // debug\n    return count + label.length();\n}",
		},
		{
			name:    "rename parameters",
			stratum: strip,
			axis:    spec(t, "rename", "few"),
			want:    "/** Returns the total. */\npublic int total(int arg0, String arg1) {\n    // debug\n    return arg0  +  arg1.length();\n}",
		},
		{
			name:      "axis already satisfied by the base",
			stratum:   m.Stratum{ID: 2, Base: []m.AxisSpec{{Axis: m.AxisIndentation, Intensity: m.IntensityStrip}}},
			axis:      spec(t, "indentation", "strip"),
			want:      "/** Returns the total. */\npublic int total(int count, String label) {\n    // debug\n    return count  +  label.length();\n}",
			unchanged: true,
		},
	}

	engine, err := domain.NewEngine(m.SymbolTable{}, 16)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Perturb(snippet, tt.stratum, tt.axis)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.unchanged, got.Unchanged)
			assert.Equal(t, m.Variant{Stratum: tt.stratum.ID, Axis: tt.axis.Axis, Intensity: tt.axis.Intensity}, got.Variant)
			assert.Same(t, snippet.Unit, got.Unit)
		})
	}
}

func TestEngine_Perturb_NoneIsNeverUnchanged(t *testing.T) {
	snippet := extractFirst(t, "java", "Box.java", "class Box { int f() { return 1; } }")

	engine, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	got, err := engine.Perturb(snippet, m.Stratum{}, m.NoneSpec)
	require.NoError(t, err)
	assert.False(t, got.Unchanged)
}

func TestEngine_Perturb_SymbolTable(t *testing.T) {
	snippet := extractFirst(t, "java", "Box.java", indentedJava)

	engine, err := domain.NewEngine(m.SymbolTable{Rename: map[string]string{"label": "name"}}, 0)
	require.NoError(t, err)

	got, err := engine.Perturb(snippet, m.Stratum{ID: 0}, spec(t, "rename", "few"))
	require.NoError(t, err)

	assert.Contains(t, got.Text, "String name)")
	assert.Contains(t, got.Text, "name.length()")
}

func TestEngine_Perturb_LiteralsSurvive(t *testing.T) {
	src := "class S {\n    String f(String a) {\n        return \"a  b\" + a + '\\t';\n    }\n}\n"
	snippet := extractFirst(t, "java", "S.java", src)

	engine, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	for _, axis := range []m.AxisSpec{spec(t, "spaces", "many"), spec(t, "tabs", "many"), spec(t, "layout", "token-per-line"), spec(t, "rename", "many")} {
		got, err := engine.Perturb(snippet, m.Stratum{}, axis)
		require.NoError(t, err, axis.String())
		assert.Contains(t, got.Text, `"a  b"`, axis.String())
		assert.Contains(t, got.Text, `'\t'`, axis.String())
	}
}

func TestEngine_Perturb_Errors(t *testing.T) {
	snippet := extractFirst(t, "java", "Box.java", indentedJava)

	engine, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	t.Run("unsupported intensity", func(t *testing.T) {
		_, err := engine.Perturb(snippet, m.Stratum{}, m.AxisSpec{Axis: m.AxisSpaces, Intensity: "loud"})
		require.ErrorIs(t, err, m.ErrUnknownIntensity)
	})

	t.Run("missing unit", func(t *testing.T) {
		_, err := engine.Perturb(m.Snippet{Text: "x"}, m.Stratum{}, m.NoneSpec)
		require.Error(t, err)
	})
}

func TestEngine_Perturb_InterpolatedParameters(t *testing.T) {
	tests := []struct {
		name  string
		lang  string
		id    string
		src   string
		axis  string
		stale string
	}{
		{
			name:  "kotlin string template",
			lang:  "kotlin",
			id:    "Greeter.kt",
			src:   "fun greet(name: String): String { return \"Hi $name and ${name.length}\" }\n",
			axis:  "few",
			stale: "name",
		},
		{
			name:  "javascript template literal",
			lang:  "javascript",
			id:    "greeter.js",
			src:   "class Greeter {\n  greet(name) { return `Hi ${name}`; }\n}\n",
			axis:  "few",
			stale: "name",
		},
		{
			name:  "csharp interpolated string",
			lang:  "csharp",
			id:    "Greeter.cs",
			src:   "class Greeter {\n    string Greet(string name) { return $\"Hi {name}\"; }\n}\n",
			axis:  "few",
			stale: "name",
		},
		{
			name:  "csharp verbatim interpolated string",
			lang:  "csharp",
			id:    "Greeter.cs",
			src:   "class Greeter {\n    string Greet(string name) { return $@\"Hi {name}\"; }\n}\n",
			axis:  "many",
			stale: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet := extractFirst(t, tt.lang, tt.id, tt.src)

			engine, err := domain.NewEngine(m.SymbolTable{}, 0)
			require.NoError(t, err)

			_, err = engine.Perturb(snippet, m.Stratum{ID: 1}, spec(t, "rename", tt.axis))

			var violation *m.TransformInvariantViolation
			require.ErrorAs(t, err, &violation)
			assert.Equal(t, "stratum1_rename_"+tt.axis, violation.Variant)
			assert.Contains(t, violation.Reason, tt.stale)

			got, err := engine.Perturb(snippet, m.Stratum{ID: 1}, spec(t, "spaces", "few"))
			require.NoError(t, err)
			assert.Contains(t, got.Text, "name")
		})
	}
}

func TestEngine_Perturb_InterpolationWithoutParameters(t *testing.T) {
	tests := []struct {
		name string
		lang string
		id   string
		src  string
		want string
	}{
		{
			name: "kotlin template reading a member",
			lang: "kotlin",
			id:   "Greeter.kt",
			src:  "fun greet(name: String): String { return \"Hi ${user.name}\" + name }\n",
			want: "\"Hi ${user.name}\" + arg0",
		},
		{
			name: "javascript plain string",
			lang: "javascript",
			id:   "greeter.js",
			src:  "class Greeter {\n  greet(name) { return \"Hi ${name}\" + name; }\n}\n",
			want: "\"Hi ${name}\" + arg0",
		},
		{
			name: "csharp string without prefix",
			lang: "csharp",
			id:   "Greeter.cs",
			src:  "class Greeter {\n    string Greet(string name) { return \"Hi {name}\" + name; }\n}\n",
			want: "\"Hi {name}\" + arg0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet := extractFirst(t, tt.lang, tt.id, tt.src)

			engine, err := domain.NewEngine(m.SymbolTable{}, 0)
			require.NoError(t, err)

			got, err := engine.Perturb(snippet, m.Stratum{ID: 1}, spec(t, "rename", "few"))
			require.NoError(t, err)
			assert.Contains(t, got.Text, tt.want)
		})
	}
}

func TestEngine_Perturb_RejectedStep(t *testing.T) {
	snippet := extractFirst(t, "java", "Box.java", indentedJava)

	base, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	engine := domain.WithTransform(base, spec(t, "spaces", "few"), func(in perturbations.Input) string {
		return strings.Replace(in.Text, "}", "", 1)
	})

	_, err = engine.Perturb(snippet, m.Stratum{ID: 2}, spec(t, "spaces", "few"))

	var violation *m.TransformInvariantViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "stratum2_spaces_few", violation.Variant)
	assert.True(t, strings.HasPrefix(violation.Reason, "spaces_few: "), violation.Reason)

	_, err = engine.Perturb(snippet, m.Stratum{ID: 2}, spec(t, "tabs", "few"))
	require.NoError(t, err)
}
