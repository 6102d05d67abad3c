package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// SuiteLoader reads self-test suite files.
type SuiteLoader interface {
	LoadSuite(ctx context.Context, path string) (m.SuiteFile, error)
}

type yamlSuiteLoader struct{}

// NewSuiteLoader returns a SuiteLoader for YAML suite files.
func NewSuiteLoader() SuiteLoader {
	return &yamlSuiteLoader{}
}

func (l *yamlSuiteLoader) LoadSuite(ctx context.Context, path string) (m.SuiteFile, error) {
	if err := ctx.Err(); err != nil {
		return m.SuiteFile{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return m.SuiteFile{}, fmt.Errorf("failed to read suite: %w", err)
	}

	var suite m.SuiteFile
	if err := yaml.Unmarshal(raw, &suite); err != nil {
		return m.SuiteFile{}, fmt.Errorf("failed to parse suite %s: %w", path, err)
	}

	slog.Info("loaded suite", "path", path, "semantic", len(suite.Semantic), "performance", len(suite.Performance))

	return suite, nil
}
