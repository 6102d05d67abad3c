package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

func TestCurveCmd_PassesFlagsThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Curve", mock.Anything, mock.MatchedBy(func(args domain.CurveArgs) bool {
		return args.RegexFile == "regexes.ndjson" &&
			args.Trials == 7 &&
			args.MaxMatchMS == 250 &&
			args.Timeout == domain.DefaultCurveQueryTimeout
	})).Return(nil)

	_, err := executeSubcommand(t, newCurveCmd(),
		"curve", "regexes.ndjson",
		"--engine", "/opt/engines/memo-engine",
		"--trials", "7",
		"--max-ms", "250",
	)
	require.NoError(t, err)
}

func TestCurveCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Curve", mock.Anything, mock.MatchedBy(func(args domain.CurveArgs) bool {
		return args.Trials == domain.DefaultCurveTrials && args.MaxMatchMS == domain.DefaultCurveMaxMatchMS
	})).Return(nil)

	_, err := executeSubcommand(t, newCurveCmd(), "curve", "regexes.ndjson", "--engine", "/opt/engines/memo-engine")
	require.NoError(t, err)
}
