package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	domainmocks "strata.dev/pkg/strata/internal/domain/mocks"
	m "strata.dev/pkg/strata/internal/model"
)

func TestListCmd_PassesPathsAndFilter(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"./a", "./b/..."}, args.Paths) &&
			assert.ObjectsAreEqual([]string{"generated"}, args.Filter.Exclude)
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--exclude", "generated", "./a", "./b/..."})
	err := cmd.Execute()
	require.NoError(t, err)
}
