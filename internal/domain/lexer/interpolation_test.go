package lexer

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	m "strata.dev/pkg/strata/internal/model"
)

func TestInterpolatedNames(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		src      string
		expected []string
	}{
		{
			name:     "kotlin bare and braced",
			lang:     "kotlin",
			src:      `"Hi $name and ${name.length} $ ${user.id + count}"`,
			expected: []string{"count", "name", "user"},
		},
		{
			name:     "kotlin escaped dollar",
			lang:     "kotlin",
			src:      `"cost \$price"`,
			expected: []string{},
		},
		{
			name:     "kotlin raw string",
			lang:     "kotlin",
			src:      `"""path \$dir"""`,
			expected: []string{"dir"},
		},
		{
			name:     "javascript template",
			lang:     "javascript",
			src:      "`$${(cents / 100).toFixed(2)}` + \"${plain}\"",
			expected: []string{"cents"},
		},
		{
			name:     "javascript escaped hole",
			lang:     "javascript",
			src:      "`\\${skipped} ${kept}`",
			expected: []string{"kept"},
		},
		{
			name:     "csharp prefixed",
			lang:     "csharp",
			src:      `$"{{literal}} {name,5} {total:N2}" + "{plain}"`,
			expected: []string{"N2", "name", "total"},
		},
		{
			name:     "csharp verbatim prefixed",
			lang:     "csharp",
			src:      `$@"C:\{dir}"`,
			expected: []string{"dir"},
		},
		{
			name:     "rust format capture",
			lang:     "rust",
			src:      `format!("{name:?} {{x}} {}", other)`,
			expected: []string{"name"},
		},
		{
			name:     "java has no interpolation",
			lang:     "java",
			src:      `"${name} {name}"`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := m.DialectByName(tt.lang)
			require.NoError(t, err)

			names := InterpolatedNames(tt.src, Tokenize(tt.src, Scan(tt.src, d)), d)

			got := make([]string, 0, len(names))
			for name := range names {
				got = append(got, name)
			}

			sort.Strings(got)

			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("InterpolatedNames() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
