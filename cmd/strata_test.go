package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrataCmd_PrintsDefaultStrata(t *testing.T) {
	originalUI := ui
	ui = nil
	t.Cleanup(func() { ui = originalUI })

	cmd := newRootCmd()
	cmd.AddCommand(newStrataCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"strata"})

	require.NoError(t, cmd.Execute())

	output := out.String()
	for _, want := range []string{"original", "unindented", "undocumented", "anonymous", "indentation_strip", "layout_single-line"} {
		assert.Contains(t, output, want)
	}
}
