package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	domainmocks "strata.dev/pkg/strata/internal/domain/mocks"
	m "strata.dev/pkg/strata/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Output == m.Path(defaultOutputDir) && args.Unit == "" && !args.Diff
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_UnitDiffAndVariant(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Output == m.Path("./corpus") &&
			args.Unit == "src/Foo.java#Foo.bar" &&
			args.Variant == "stratum1_spaces_few" &&
			args.Diff
	})).Return(nil)

	cmd.SetArgs([]string{"view", "--output", "./corpus", "--diff", "--variant", "stratum1_spaces_few", "src/Foo.java#Foo.bar"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_RejectsSecondArgument(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"view", "a#b", "c#d"})
	err := cmd.Execute()
	require.Error(t, err)
}
