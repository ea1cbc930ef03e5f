package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	if strings.Contains(output, "strata version: unknown") {
		return
	}

	assert.Contains(t, output, "strata version")
	assert.Contains(t, output, "go version")
}

func TestBuildSetting(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
	}}

	assert.Equal(t, "abc123", buildSetting(info, "vcs.revision"))
	assert.Empty(t, buildSetting(info, "vcs.time"))
}
