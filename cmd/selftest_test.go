package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

func TestSelfTestCmd_CollectsSuites(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	var got domain.SelfTestArgs
	mockWorkflow.On("SelfTest", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(domain.SelfTestArgs) }).
		Return(nil)

	_, err := executeSubcommand(t, newSelfTestCmd(),
		"selftest", "all.yaml",
		"--engine", "/opt/engines/memo-engine",
		"--semantic", "semantic.yaml",
		"--performance", "perf-a.yaml",
		"--performance", "perf-b.yaml",
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"all.yaml", "semantic.yaml", "perf-a.yaml", "perf-b.yaml"}, got.SuiteFiles)
	assert.Equal(t, domain.DefaultDetectionTimeout, got.Timeout)
	assert.NotNil(t, got.Engine)
}

func TestSelfTestCmd_ReturnsFailure(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("SelfTest", mock.Anything, mock.Anything).Return(domain.ErrSelfTestFailed)

	_, err := executeSubcommand(t, newSelfTestCmd(), "selftest", "all.yaml", "--engine", "/opt/engines/memo-engine")
	require.ErrorIs(t, err, domain.ErrSelfTestFailed)
}
