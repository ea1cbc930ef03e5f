package perturbations

import (
	"testing"
)

func TestStripIndentation(t *testing.T) {
	runCases(t, StripIndentation, []transformCase{
		{
			name:     "unit indentation removed from doc and body",
			src:      "/**\n     * Doc.\n     */\n    public void f() {\n        x();\n    }",
			expected: "/**\n * Doc.\n */\npublic void f() {\n    x();\n}",
		},
		{
			name:     "text block lines untouched",
			src:      "String f() {\n        return \"\"\"\n            a\n        \"\"\";\n    }",
			expected: "String f() {\n    return \"\"\"\n            a\n        \"\"\";\n}",
		},
		{
			name:     "blank lines ignored when measuring",
			src:      "void f() {\n\t\tx();\n\n\t\ty();\n\t}",
			expected: "void f() {\n\tx();\n\n\ty();\n}",
		},
		{
			name:     "whitespace-only lines emptied",
			src:      "void f() {\n    x();\n  \n  }",
			expected: "void f() {\n  x();\n\n}",
		},
		{
			name:     "no common indentation",
			src:      "void f() {\nx();\n}",
			expected: "void f() {\nx();\n}",
		},
		{
			name:     "single line",
			src:      "void f() {}",
			expected: "void f() {}",
		},
	})
}
