package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	domainmocks "strata.dev/pkg/strata/internal/domain/mocks"
	m "strata.dev/pkg/strata/internal/model"
)

func TestMergeCmd_UsesRootOutputFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want m.Path
	}{
		{"default", []string{"merge"}, m.Path(defaultOutputDir)},
		{"explicit", []string{"merge", "-o", "./shards"}, m.Path("./shards")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd := newRootCmd()
			cmd.AddCommand(newMergeCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			mockWorkflow.On("Merge", mock.Anything, mock.MatchedBy(func(args domain.MergeArgs) bool {
				return args.Output == tt.want
			})).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestMergeCmd_PropagatesError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMergeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Merge", mock.Anything, mock.Anything).Return(errors.New("no shard_* directories found"))

	cmd.SetArgs([]string{"merge"})
	require.Error(t, cmd.Execute())
}
