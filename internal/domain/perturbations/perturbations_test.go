package perturbations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

var samples = map[string]string{
	"java": `/**
     * Adds things.
     */
    @Override
    public int add(final int a, int b) throws Exception {
        // sum
        String s = "a  {b}"; /* inline */ char c = '}';
        int arg0 = a;

        return a + b + arg0 + Integer.parseInt(s); // done
    }`,
	"kotlin": `/**
     * Greets.
     */
    fun greet(name: String, times: Int = 1): String {
        val line = "Hi, $name"
        return line
            .repeat(times)
    }`,
	"go":         "// Sum adds.\nfunc (c *Calc) Sum(a, b int) (int, error) {\n\ts := `raw {`\n\tif a > b {\n\t\treturn a, nil\n\t}\n\n\treturn a + b, nil // ok\n}",
	"c": `/* Computes. */
static int sum(const int *xs, size_t n) {
#ifdef DEBUG
    printf("%d\n", n);
#endif
    int total = 0;
    for (size_t i = 0; i < n; i++) total += xs[i];
    return total;
}`,
	"javascript": "/** Doubles. */\nasync function double(x, { scale = 2 } = {}) {\n  const y = x * scale\n  return `${y}`\n}",
	"csharp":     "/// <summary>Runs.</summary>\n        public void Run(string path, ref int count)\n        {\n            var p = @\"C:\\tmp\\\" + path;\n            count++;\n        }",
	"rust":       "/// Area.\n    pub fn area<'a>(&'a self, scale: f64) -> f64 {\n        let c = '{';\n        self.w * scale\n    }",
}

var sampleNames = map[string]string{
	"java":       "add",
	"kotlin":     "greet",
	"go":         "Sum",
	"c":          "sum",
	"javascript": "double",
	"csharp":     "Run",
	"rust":       "area",
}

var allTransforms = map[string]Transform{
	"comments_remove":       RemoveComments,
	"comments_docs":         RemoveDocComments,
	"comments_inline":       RemoveInlineComments,
	"spaces_few":            SpacesFew,
	"spaces_many":           SpacesMany,
	"tabs_few":              TabsFew,
	"tabs_many":             TabsMany,
	"newlines_few":          NewlinesFew,
	"newlines_many":         NewlinesMany,
	"layout_single-line":    SingleLine,
	"layout_token-per-line": TokenPerLine,
	"indentation_strip":     StripIndentation,
	"rename_few":            RenameFew,
	"rename_many":           RenameMany,
	"qualify_few":           QualifyFew,
	"qualify_many":          QualifyMany,
}

func TestTransforms_Idempotent(t *testing.T) {
	symbols := m.SymbolTable{
		Rename:  map[string]string{"total": "sum0", "line": "text"},
		Qualify: map[string]string{"Calc": "calc.Calc"},
	}

	for lang, src := range samples {
		for name, transform := range allTransforms {
			t.Run(lang+"/"+name, func(t *testing.T) {
				in := input(t, lang, src, sampleNames[lang])
				in.Symbols = symbols

				once := transform(in)

				again := input(t, lang, once, sampleNames[lang])
				again.Symbols = symbols

				assert.Equal(t, once, transform(again))
			})
		}
	}
}

func TestTransforms_PreserveLiteralsAndBalance(t *testing.T) {
	for lang, src := range samples {
		for name, transform := range allTransforms {
			in := input(t, lang, src, sampleNames[lang])
			require.Nil(t, in.Scan.Degenerate, "%s sample must scan cleanly", lang)

			out := transform(in)

			assert.NoError(t, lexer.Verify(src, out, in.Dialect), "%s %s", lang, name)
		}
	}
}

func TestTransforms_EmptyInput(t *testing.T) {
	for name, transform := range allTransforms {
		assert.Equal(t, "", transform(input(t, "java", "", "f")), name)
	}
}
