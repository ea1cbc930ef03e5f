package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "strata.dev/pkg/strata/internal/model"
)

func TestVerify(t *testing.T) {
	before := `void f() { String s = "a  b"; /* c */ }`

	tests := []struct {
		name    string
		after   string
		wantErr bool
	}{
		{"whitespace collapsed", `void f() { String s = "a  b"; }`, false},
		{"unchanged", before, false},
		{"lost brace", `void f() { String s = "a  b";`, true},
		{"literal rewritten", `void f() { String s = "a b"; }`, true},
		{"literal dropped", `void f() { }`, true},
		{"new unterminated comment", `void f() { String s = "a  b"; } /*`, true},
	}

	java := dialect(t, "java")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(before, tt.after, java)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)

			var violation *m.TransformInvariantViolation
			assert.True(t, errors.As(err, &violation))
		})
	}
}

func TestVerify_DegenerateInputStaysAllowed(t *testing.T) {
	java := dialect(t, "java")

	assert.NoError(t, Verify("int x; /* open", "int x; /* open", java))
}

func TestLiterals(t *testing.T) {
	src := `a("x", 'y', "z")`

	assert.Equal(t, []string{`"x"`, `'y'`, `"z"`}, Literals(src, Scan(src, dialect(t, "java"))))
}
