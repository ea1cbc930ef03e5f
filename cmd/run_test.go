package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	domainmocks "strata.dev/pkg/strata/internal/domain/mocks"
	m "strata.dev/pkg/strata/internal/model"
)

func newTestRunCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	execute := func(args ...string) error {
		cmd := newRootCmd()
		cmd.AddCommand(newRunCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"run"}, args...))

		return cmd.Execute()
	}

	return mockWorkflow, execute
}

func TestRunCmd_PassesParallelAndPaths(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Parallel == 2 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			args.Output == m.Path(defaultOutputDir) &&
			assert.ObjectsAreEqual([]m.Path{"./src/..."}, args.Paths)
	})).Return(m.RunSummary{}, nil)

	require.NoError(t, execute("--parallel", "2", "./src/..."))
}

func TestRunCmd_WithSharding(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.ShardIndex == 1 && args.TotalShardCount == 3
	})).Return(m.RunSummary{}, nil)

	require.NoError(t, execute("--shard", "1/3", "./..."))
}

func TestRunCmd_InvalidShardIsRejected(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	err := execute("--shard", "3/3", "./...")
	require.Error(t, err)
	mockWorkflow.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestRunCmd_OutputFlag(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Output == m.Path("./corpus")
	})).Return(m.RunSummary{}, nil)

	require.NoError(t, execute("-o", "./corpus", "."))
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.On("Generate", mock.Anything, mock.Anything).Return(m.RunSummary{}, errors.New("disk full"))

	err := execute(".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := newRunCmd()

	parallel := cmd.Flags().Lookup(runParallelFlagName)
	require.NotNil(t, parallel)
	assert.Equal(t, "p", parallel.Shorthand)

	shard := cmd.Flags().Lookup(shardFlagName)
	require.NotNil(t, shard)
	assert.Equal(t, "s", shard.Shorthand)
	assert.Empty(t, shard.DefValue)
}
