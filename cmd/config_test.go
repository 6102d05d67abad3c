package cmd

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "memoprof", configBaseName)
	assert.Equal(t, "memoprof.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "engine.path", enginePathKey)
	assert.Equal(t, ".memoprof-results", defaultReportsDir)
	assert.Equal(t, 0, defaultRunParallel)
	assert.Equal(t, "MEMOPROF", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestPipelineConfig_Defaults(t *testing.T) {
	// Rebind every flag-backed key to an unchanged flag.
	root := newRootCmd()
	measure := newMeasureCmd()
	root.AddCommand(measure)
	bindFlagToConfig(measure.Flags().Lookup(parallelFlagName), runParallelConfigKey)

	got := pipelineConfig()

	assert.Equal(t, domain.DefaultConfig(), got)
	require.NoError(t, got.Validate())
}

func TestDurationOrDefault(t *testing.T) {
	assert.Equal(t, domain.DefaultDetectionTimeout, durationOrDefault(detectTimeoutKey, time.Minute))
	assert.Equal(t, time.Minute, durationOrDefault("no.such.key", time.Minute))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_Console(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	stderr := &bytes.Buffer{}
	configureLogger(consoleLogFilename, true, stderr)

	slog.Debug("probe detection", "pattern", "(a|a)*b")

	assert.Same(t, globalLogger, slog.Default())
	assert.Contains(t, stderr.String(), "probe detection")
	assert.Contains(t, stderr.String(), "(a|a)*b")
}
